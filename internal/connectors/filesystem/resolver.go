package filesystem

import (
	"path/filepath"
	"strings"
)

// resolvePath converts a file:// URI or a path relative to root into an
// absolute local path.
func resolvePath(root, uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
