package testdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUCDPath(t *testing.T) {
	path := UCDPath("BidiTest.txt")
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "BidiTest.txt", filepath.Base(path))
	assert.Equal(t, "ucd", filepath.Base(filepath.Dir(path)))
	assert.False(t, Available("does-not-exist.txt"))
}
