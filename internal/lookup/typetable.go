package lookup

import (
	"fmt"
	"sort"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
	"github.com/SohamSachinDhore/bet-v2/internal/parser"
)

// TypeTables holds the SP/DP/CP column-to-pana mappings. DPT resolves
// through the DP table; the triplet filter is applied for DP only, at
// expansion time. The zero value expands nothing and reports UnknownTable,
// which is the degraded mode when loading fails.
type TypeTables struct {
	sp map[int][]int
	dp map[int][]int
	cp map[int][]int
}

// NewTypeTables builds a TypeTables from loaded column maps. Nil maps are
// allowed and behave as empty.
func NewTypeTables(sp, dp, cp map[int][]int) *TypeTables {
	return &TypeTables{sp: sp, dp: dp, cp: cp}
}

// EmptyTypeTables is the degraded instance used when loading fails: type
// entries then fail expansion with UnknownTable while every other entry
// kind keeps working.
func EmptyTypeTables() *TypeTables { return &TypeTables{} }

// Loaded reports whether any table has content.
func (t *TypeTables) Loaded() bool {
	return len(t.sp) > 0 || len(t.dp) > 0 || len(t.cp) > 0
}

// Numbers returns the pana numbers of one column. DP filters out triplets;
// DPT returns the same column with triplets kept.
func (t *TypeTables) Numbers(kind domain.TypeTableKind, column int) ([]int, error) {
	var m map[int][]int
	switch kind {
	case domain.TypeTableSP:
		m = t.sp
	case domain.TypeTableDP, domain.TypeTableDPT:
		m = t.dp
	case domain.TypeTableCP:
		m = t.cp
	default:
		return nil, &UnknownTableError{Kind: kind, Column: column}
	}

	numbers, ok := m[column]
	if !ok || len(numbers) == 0 {
		return nil, &UnknownTableError{Kind: kind, Column: column}
	}

	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if kind == domain.TypeTableDP && IsTriplet(n) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// UnknownTableError is returned when a table has no data for a column,
// including the degraded everything-empty mode.
type UnknownTableError struct {
	Kind   domain.TypeTableKind
	Column int
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("type table %s has no column %d", e.Kind, e.Column)
}

// Code returns the parse error code for rendering alongside line errors.
func (e *UnknownTableError) Code() parser.ErrorCode { return parser.CodeUnknownTable }

// IsTriplet reports whether a pana consists of three identical digits
// (000, 111, ... 999). The zero-padded string form is what counts.
func IsTriplet(n int) bool {
	if n < 0 || n > 999 {
		return false
	}
	d0 := n % 10
	return n/100 == d0 && (n/10)%10 == d0
}

// ---------------------------------------------------------------------------
// Seed generation. The canonical tables are derived, not hand-entered:
// a pana belongs to SP/DP column N when the last digit of its digit sum is
// N%10 (column 10 stands for 0) and it has three distinct digits (SP) or a
// repeated digit (DP, triplet included so DPT can reach it). CP column XY
// holds every pana containing both digits X and Y; column 0 holds panas
// containing a zero.
// ---------------------------------------------------------------------------

// GenerateSP builds the single-pana table: columns 1-10.
func GenerateSP() map[int][]int {
	out := make(map[int][]int, 10)
	forEachPana(func(n, a, b, c int) {
		if a == b || b == c || a == c {
			return
		}
		col := sumColumn(a + b + c)
		out[col] = append(out[col], n)
	})
	sortColumns(out)
	return out
}

// GenerateDP builds the double-pana table: columns 1-10, triplets included.
func GenerateDP() map[int][]int {
	out := make(map[int][]int, 10)
	forEachPana(func(n, a, b, c int) {
		if a != b && b != c && a != c {
			return
		}
		col := sumColumn(a + b + c)
		out[col] = append(out[col], n)
	})
	sortColumns(out)
	return out
}

// GenerateCP builds the cut-pana table: column 0 plus 11-99.
func GenerateCP() map[int][]int {
	out := make(map[int][]int)
	forEachPana(func(n, a, b, c int) {
		digits := []int{a, b, c}
		if containsDigit(digits, 0) {
			out[0] = append(out[0], n)
		}
		for col := 11; col <= 99; col++ {
			x, y := col/10, col%10
			if x == y {
				if countDigit(digits, x) >= 2 {
					out[col] = append(out[col], n)
				}
			} else if containsDigit(digits, x) && containsDigit(digits, y) {
				out[col] = append(out[col], n)
			}
		}
	})
	sortColumns(out)
	return out
}

// forEachPana visits every canonical pana: digits drawn non-decreasing,
// written with zeros last (e.g. {0,1,2} is 120, {0,0,1} is 100).
func forEachPana(fn func(n, a, b, c int)) {
	for a := 0; a <= 9; a++ {
		for b := a; b <= 9; b++ {
			for c := b; c <= 9; c++ {
				fn(canonicalPana(a, b, c), a, b, c)
			}
		}
	}
}

// canonicalPana writes three non-decreasing digits in display order:
// ascending, zeros moved to the end.
func canonicalPana(a, b, c int) int {
	nonzero := make([]int, 0, 3)
	zeros := 0
	for _, d := range []int{a, b, c} {
		if d == 0 {
			zeros++
		} else {
			nonzero = append(nonzero, d)
		}
	}
	digits := append(nonzero, make([]int, zeros)...)
	return digits[0]*100 + digits[1]*10 + digits[2]
}

func sumColumn(sum int) int {
	col := sum % 10
	if col == 0 {
		return 10
	}
	return col
}

func containsDigit(digits []int, d int) bool { return countDigit(digits, d) > 0 }

func countDigit(digits []int, d int) int {
	c := 0
	for _, x := range digits {
		if x == d {
			c++
		}
	}
	return c
}

func sortColumns(m map[int][]int) {
	for _, numbers := range m {
		sort.Ints(numbers)
	}
}
