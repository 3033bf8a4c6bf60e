package main

import (
	"syscall"

	log "github.com/sirupsen/logrus"
)

// isHidden reports whether a directory entry is excluded from the report
// by default. Windows marks entries hidden through a file attribute in
// addition to the leading-dot convention. When the attribute cannot be
// read the entry stays visible, so permission problems never make the
// tree look emptier than it is.
func isHidden(path, name string) bool {
	if name == "." || name == ".." {
		return false
	}
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		log.Debugf("hidden check skipped for %s: %v", path, err)
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		log.Debugf("could not read attributes of %s: %v", path, err)
		return false
	}
	return attrs&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
