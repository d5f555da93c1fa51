package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/logger"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stemmer"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stopwords"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/preprocess"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/textnorm"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The quick brown fox jumps over the lazy dog. This sentence contains all letters of the English alphabet and isn't rarely used for testing text processing algorithms!"
	var sb strings.Builder
	sb.Grow(size + len(sample))

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	return sb.String()[:size]
}

// generateDataset creates rows labeled with one of classes, every dupEvery-th row
// repeating its predecessor.
func generateDataset(rows, dupEvery int, classes ...string) *domain.Dataset {
	ds := domain.NewDataset([]string{"text", "target"}, make([][]string, 0, rows))
	for i := 0; i < rows; i++ {
		if dupEvery > 0 && i > 0 && i%dupEvery == 0 {
			prev := ds.Rows[i-1]
			ds.Rows = append(ds.Rows, []string{prev[0], prev[1]})
			continue
		}
		text := fmt.Sprintf("Message %d: %s", i, generateText(80+i%120))
		ds.Rows = append(ds.Rows, []string{text, classes[i%len(classes)]})
	}
	return ds
}

func newNormalizer(b *testing.B, tok tokenizer.Type, stem stemmer.Type) *textnorm.Normalizer {
	b.Helper()
	t, err := tokenizer.NewFactory().Create(tok)
	if err != nil {
		b.Fatal(err)
	}
	s, err := stemmer.New(stem)
	if err != nil {
		b.Fatal(err)
	}
	n, err := textnorm.NewNormalizer(textnorm.Config{}, logger.NewNopLogger(), t, s, stopwords.NewNLTKEnglish())
	if err != nil {
		b.Fatal(err)
	}
	return n
}

func BenchmarkNormalize(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	variants := []struct {
		name string
		tok  tokenizer.Type
		stem stemmer.Type
	}{
		{"Treebank_Porter", tokenizer.TreebankType, stemmer.PorterType},
		{"Treebank_Snowball", tokenizer.TreebankType, stemmer.SnowballType},
		{"WordPunct_Porter", tokenizer.WordPunctType, stemmer.PorterType},
	}

	for _, v := range variants {
		n := newNormalizer(b, v.tok, v.stem)
		for _, size := range sizes {
			text := generateText(size)
			b.Run(fmt.Sprintf("%s_%d", v.name, size), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(text)))
				for i := 0; i < b.N; i++ {
					if _, err := n.Normalize(text); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkNormalizeParallel(b *testing.B) {
	n := newNormalizer(b, tokenizer.TreebankType, stemmer.PorterType)
	text := generateText(1000)

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := n.Normalize(text); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkPreprocess(b *testing.B) {
	n := newNormalizer(b, tokenizer.TreebankType, stemmer.PorterType)
	p, err := preprocess.NewPreprocessor(n, logger.NewNopLogger())
	if err != nil {
		b.Fatal(err)
	}

	for _, rows := range []int{100, 1000, 10000} {
		ds := generateDataset(rows, 10, "ham", "spam", "eggs")
		b.Run(fmt.Sprintf("Rows_%d", rows), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := p.Preprocess(context.Background(), ds, domain.DefaultColumns()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
