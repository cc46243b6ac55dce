package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a parsed A1 range. Columns and rows are 1-based; an end of 0
// means the range is open in that dimension.
type Range struct {
	Tab      string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

// ParseRange parses "Tab!A2:K1000", "Tab!A:E", "Tab!B3" or "Tab".
func ParseRange(s string) (Range, error) {
	tab, cells, found := strings.Cut(s, "!")
	tab = strings.Trim(strings.TrimSpace(tab), "'")
	if tab == "" {
		return Range{}, fmt.Errorf("range %q: missing tab", s)
	}
	r := Range{Tab: tab, StartCol: 1, StartRow: 1}
	if !found || cells == "" {
		return r, nil
	}

	from, to, hasEnd := strings.Cut(cells, ":")
	sc, sr, err := parseCell(from)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if sc > 0 {
		r.StartCol = sc
	}
	if sr > 0 {
		r.StartRow = sr
	}
	if !hasEnd {
		r.EndCol, r.EndRow = r.StartCol, r.StartRow
		if sr == 0 {
			r.EndRow = 0
		}
		return r, nil
	}
	ec, er, err := parseCell(to)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	r.EndCol, r.EndRow = ec, er
	if r.EndCol != 0 && r.EndCol < r.StartCol {
		return Range{}, fmt.Errorf("range %q: end column before start", s)
	}
	if r.EndRow != 0 && r.EndRow < r.StartRow {
		return Range{}, fmt.Errorf("range %q: end row before start", s)
	}
	return r, nil
}

// Contains reports whether the 1-based cell (row, col) falls inside r.
func (r Range) Contains(row, col int) bool {
	if row < r.StartRow || col < r.StartCol {
		return false
	}
	if r.EndRow != 0 && row > r.EndRow {
		return false
	}
	if r.EndCol != 0 && col > r.EndCol {
		return false
	}
	return true
}

func (r Range) String() string {
	start := ColumnName(r.StartCol) + strconv.Itoa(r.StartRow)
	end := ""
	if r.EndCol != 0 {
		end = ColumnName(r.EndCol)
	}
	if r.EndRow != 0 {
		end += strconv.Itoa(r.EndRow)
	}
	if end == "" {
		return r.Tab + "!" + start
	}
	return r.Tab + "!" + start + ":" + end
}

// parseCell splits "AB12" into column 28 and row 12. Either part may be absent.
func parseCell(s string) (col, row int, err error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A'+1)
		i++
	}
	if i < len(s) {
		row, err = strconv.Atoi(s[i:])
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("bad cell reference %q", s)
		}
	}
	if col == 0 && row == 0 {
		return 0, 0, fmt.Errorf("empty cell reference")
	}
	return col, row, nil
}

// ColumnName converts a 1-based column index to letters (1 -> A, 27 -> AA).
func ColumnName(col int) string {
	if col < 1 {
		return ""
	}
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b)
}
