// Package labels maps categorical label values to integer codes.
package labels

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNotFitted is returned when Transform is called before Fit.
var ErrNotFitted = errors.New("label encoder is not fitted")

// UnseenLabelError reports a value that was not present at fit time.
type UnseenLabelError struct {
	Value string
	Index int
}

func (e *UnseenLabelError) Error() string {
	return fmt.Sprintf("label %q at index %d was not seen during fit", e.Value, e.Index)
}

// Encoder assigns each distinct label a code in 0..k-1 following the sorted
// order of the distinct values. Values compare numerically when every one of
// them parses as a number, lexically otherwise.
type Encoder struct {
	classes []string
	codes   map[string]int
}

// NewEncoder creates an unfitted encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Fit learns the class set from values, replacing any previous fit.
func (e *Encoder) Fit(values []string) *Encoder {
	seen := make(map[string]struct{}, len(values))
	classes := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	sortClasses(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	e.classes = classes
	e.codes = codes
	return e
}

// Transform maps values to their codes. The first unseen value aborts with
// an *UnseenLabelError.
func (e *Encoder) Transform(values []string) ([]int, error) {
	if !e.Fitted() {
		return nil, ErrNotFitted
	}
	out := make([]int, len(values))
	for i, v := range values {
		code, ok := e.codes[v]
		if !ok {
			return nil, &UnseenLabelError{Value: v, Index: i}
		}
		out[i] = code
	}
	return out, nil
}

// FitTransform fits on values and encodes them.
func (e *Encoder) FitTransform(values []string) []int {
	out, _ := e.Fit(values).Transform(values)
	return out
}

// Fitted reports whether Fit has been called.
func (e *Encoder) Fitted() bool {
	return e != nil && e.codes != nil
}

// Classes returns the fitted classes indexed by code.
func (e *Encoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// InverseTransform maps codes back to their labels.
func (e *Encoder) InverseTransform(codes []int) ([]string, error) {
	if !e.Fitted() {
		return nil, ErrNotFitted
	}
	out := make([]string, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(e.classes) {
			return nil, fmt.Errorf("code %d at index %d is out of range [0,%d)", c, i, len(e.classes))
		}
		out[i] = e.classes[c]
	}
	return out, nil
}

func sortClasses(classes []string) {
	nums := make([]float64, len(classes))
	numeric := len(classes) > 0
	for i, c := range classes {
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = f
	}
	if !numeric {
		sort.Strings(classes)
		return
	}
	sort.Sort(numericClasses{values: classes, nums: nums})
}

type numericClasses struct {
	values []string
	nums   []float64
}

func (n numericClasses) Len() int { return len(n.values) }
func (n numericClasses) Less(i, j int) bool {
	if n.nums[i] != n.nums[j] {
		return n.nums[i] < n.nums[j]
	}
	return n.values[i] < n.values[j]
}
func (n numericClasses) Swap(i, j int) {
	n.values[i], n.values[j] = n.values[j], n.values[i]
	n.nums[i], n.nums[j] = n.nums[j], n.nums[i]
}
