/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data lines consist of fields separated by ';'. The first field is a code point
or a range of code points ("0000..001F"). Everything after a '#' is a comment.
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token subsumes the properties of a data line of a UCD file.
type Token struct {
	LineNo   int      // line number, starting at 1
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields of the line, trimmed of whitespace
	Comment  string   // rest-of-line comment
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (0…n-1) from the current data item. Field 0 is the
// code point (range).
func (token *Token) Field(i int) string {
	if i >= 0 && i < len(token.Fields) {
		return token.Fields[i]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Parse iterates over each data line of r and calls callback f on it.
// Empty lines and comment lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	if r == nil {
		return errors.New("no input present")
	}
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		token := &Token{LineNo: lineno}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			token.Comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, field := range strings.Split(line, ";") {
			token.Fields = append(token.Fields, strings.TrimSpace(field))
		}
		from, to, err := ParseRange(token.Fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		token.runeFrom, token.runeTo = from, to
		f(token)
	}
	return sc.Err()
}

// ParseRange parses a code point ("0041") or a code point range ("0041..005A").
func ParseRange(s string) (from, to rune, err error) {
	lo, hi, isRange := strings.Cut(s, "..")
	if from, err = ParseCodePoint(lo); err != nil {
		return
	}
	to = from
	if isRange {
		to, err = ParseCodePoint(hi)
	}
	return
}

// ParseCodePoint parses a hexadecimal code point.
func ParseCodePoint(s string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}

// ParseCodePoints parses a space separated list of hexadecimal code points.
func ParseCodePoints(s string) ([]rune, error) {
	fields := strings.Fields(s)
	runes := make([]rune, 0, len(fields))
	for _, f := range fields {
		r, err := ParseCodePoint(f)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
	}
	return runes, nil
}
