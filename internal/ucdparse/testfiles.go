package ucdparse

import (
	"bufio"
	"os"
	"strings"
	"testing"
)

// TestFile reads Unicode test files (e.g. BidiTest.txt) line by line,
// skipping empty lines and comment lines.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	lineno  int
	text    string
	comment string
}

// OpenTestFile opens a Unicode test file. If the file is not present, a test
// calling OpenTestFile will be skipped. Without a test context, nil is
// returned for a missing file.
func OpenTestFile(filename string, t *testing.T) *TestFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Skipf("test file %s not present, skipping (see internal/testdata)", filename)
		}
		return nil
	}
	tf := &TestFile{in: f, scanner: bufio.NewScanner(f)}
	tf.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return tf
}

// Scan advances to the next non-empty, non-comment line.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		tf.lineno++
		line := strings.TrimSpace(tf.scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		tf.text, tf.comment = line, ""
		if i := strings.IndexByte(line, '#'); i >= 0 {
			tf.text, tf.comment = strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
		}
		return true
	}
	return false
}

// Text returns the current line without comment.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the comment of the current line, if any.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// LineNo returns the current line number.
func (tf *TestFile) LineNo() int {
	return tf.lineno
}

// Err returns the first error encountered while scanning.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}
