package preprocess

import (
	"strconv"

	"github.com/baditaflorin/go_text_preprocessing/internal/pool"
)

// dropDuplicates removes rows identical in every cell to an earlier row. It
// returns the kept rows in their original order and, for each kept row, its
// index in the input.
func dropDuplicates(rows [][]string, builders *pool.StringBuilderPool) ([][]string, []int) {
	seen := make(map[string]struct{}, len(rows))
	kept := make([][]string, 0, len(rows))
	origin := make([]int, 0, len(rows))
	for i, row := range rows {
		key := rowKey(row, builders)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
		origin = append(origin, i)
	}
	return kept, origin
}

// rowKey length-prefixes every cell so that no two distinct rows share a key.
func rowKey(row []string, builders *pool.StringBuilderPool) string {
	sb := builders.Get()
	defer builders.Put(sb)
	for _, cell := range row {
		sb.WriteString(strconv.Itoa(len(cell)))
		sb.WriteByte(':')
		sb.WriteString(cell)
	}
	return sb.String()
}
