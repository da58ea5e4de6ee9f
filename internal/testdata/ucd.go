// Package testdata locates the files of the Unicode Character Database used
// for generating tables and for conformance tests. The files are downloaded
// into directory ucd by download.go and are not part of the repository.
package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// UCDPath returns the path for the given UCD file, independent of the
// working directory of the caller.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}

// Available is true if the given UCD file has been downloaded.
func Available(file string) bool {
	_, err := os.Stat(UCDPath(file))
	return err == nil
}
