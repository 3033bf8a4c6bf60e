//go:build !windows

package main

// isHidden reports whether a directory entry is excluded from the report
// by default. On POSIX systems only the leading-dot convention applies;
// path is unused here but needed by the Windows build. The relative
// names "." and ".." are never hidden.
func isHidden(path, name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}
