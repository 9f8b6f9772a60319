package pkg

import (
	"errors"
	"io/fs"
	"os"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation.
// buf must not be modified afterwards.
func BytesToString(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// PathExists reports whether path exists and is a directory (isDir) or a regular file.
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return isDir == stat.IsDir(), nil
}
