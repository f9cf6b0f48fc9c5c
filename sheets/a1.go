package sheets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	plainSheetName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// Names like "A1" or "R1C1" would parse as cell references.
	cellLikeName = regexp.MustCompile(`^(?i:[A-Z]{1,3}[0-9]+|R[0-9]*C[0-9]*)$`)
)

// ColumnName converts a 1-based column number to letters: 1 is A, 26 is Z,
// 27 is AA. It returns "" for n < 1.
func ColumnName(n int) string {
	if n < 1 {
		return ""
	}

	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnIndex converts column letters to a 1-based number. It is the
// inverse of ColumnName and accepts lower case.
func ColumnIndex(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}

	n := 0
	for _, r := range strings.ToUpper(name) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		n = n*26 + int(r-'A'+1)
		if n > 1<<24 {
			return 0, fmt.Errorf("column name %q is out of range", name)
		}
	}
	return n, nil
}

// Cell returns the A1 reference of a 1-based column and row, such as B3.
func Cell(column, row int) string {
	return ColumnName(column) + strconv.Itoa(row)
}

// QuoteSheetName quotes a sheet name for use in A1 notation when it is not
// a plain identifier. Embedded single quotes are doubled.
func QuoteSheetName(sheet string) string {
	if plainSheetName.MatchString(sheet) && !cellLikeName.MatchString(sheet) {
		return sheet
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// A1Range builds an A1 range. An empty sheet refers to the first visible
// sheet, an empty from to the whole sheet, and an empty to to the single
// cell or column range in from.
//
//	A1Range("Sheet1", "A1", "B2")    // Sheet1!A1:B2
//	A1Range("My Sheet", "A", "C")    // 'My Sheet'!A:C
//	A1Range("Bob's", "", "")         // 'Bob''s'
//	A1Range("", "A1", "")            // A1
func A1Range(sheet, from, to string) string {
	var ref string
	switch {
	case from == "":
	case to == "":
		ref = from
	default:
		ref = from + ":" + to
	}

	switch {
	case sheet == "":
		return ref
	case ref == "":
		return QuoteSheetName(sheet)
	default:
		return QuoteSheetName(sheet) + "!" + ref
	}
}
