package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SafeDestination returns a path inside dir that does not collide with an
// existing file. The first candidate is dir/filename; on collision it
// probes "stem (2).ext", "stem (3).ext", and so on until a free name is
// found. The check-then-use pattern is not atomic against concurrent
// external writers; this tool assumes a single operator.
func SafeDestination(dir, filename string) string {
	ext := fileExt(filename)
	stem := strings.TrimSuffix(filename, ext)

	candidate := filepath.Join(dir, filename)
	for k := 2; pathExists(candidate); k++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, k, ext))
	}
	return candidate
}

// fileExt returns the extension of name including the dot. A dotfile
// like ".bashrc" has no extension: the leading dot is part of the name,
// not a separator, so the whole name is never treated as an extension.
func fileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}

// pathExists reports whether a path currently resolves to anything on
// disk. Symlinks are followed, matching the move primitive's view.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
