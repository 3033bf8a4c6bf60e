package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// walk renders dir's visible entries onto w and recurses into
// subdirectories, accumulating totals in stats. ancestors records, for
// each enclosing level, whether that directory was the last entry of its
// parent; its length is the current depth. Only the error from listing
// dir itself is returned. Failures further down are contained so the
// report stays as complete as the filesystem allows.
func walk(w io.Writer, dir string, ancestors []bool, opts Options, stats *Stats) error {
	entries, err := readEntries(dir, opts)
	if err != nil {
		return err
	}
	for i, e := range entries {
		last := i == len(entries)-1
		fmt.Fprintln(w, renderLine(e, ancestors, last, opts))
		if e.Kind == KindDir {
			stats.Dirs++
			if opts.MaxLevel > 0 && len(ancestors)+1 >= opts.MaxLevel {
				continue
			}
			if err := walk(w, e.Path, append(ancestors, last), opts, stats); err != nil {
				log.Warnf("cannot read directory %s: %v", e.Path, err)
			}
		} else {
			stats.Files++
		}
	}
	return nil
}

// readEntries lists dir and classifies each member, dropping entries the
// options exclude. os.ReadDir returns entries sorted by filename, which
// keeps repeated runs over an unchanged tree byte-identical.
func readEntries(dir string, opts Options) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		path := filepath.Join(dir, name)
		if !opts.ShowHidden && isHidden(path, name) {
			log.Debugf("skipping hidden entry %s", path)
			continue
		}
		e := classify(d, path)
		if opts.DirsOnly && e.Kind != KindDir {
			continue
		}
		if opts.Counter != nil && e.Kind == KindFile && !e.Broken {
			e.Tokens = countFileTokens(opts.Counter, e.Path)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// classify resolves one directory entry into its effective kind. Symlinks
// take the kind of their target; a link whose target cannot be resolved
// stays a file leaf and is never descended.
func classify(d fs.DirEntry, path string) Entry {
	e := Entry{Name: d.Name(), Path: path, Tokens: -1}
	if d.Type()&fs.ModeSymlink != 0 {
		e.IsLink = true
		if target, err := os.Readlink(path); err == nil {
			e.Target = target
		}
		info, err := os.Stat(path)
		if err != nil {
			e.Broken = true
			return e
		}
		if info.IsDir() {
			e.Kind = KindDir
		} else {
			e.Size = info.Size()
		}
		return e
	}
	if d.IsDir() {
		e.Kind = KindDir
		return e
	}
	if info, err := d.Info(); err == nil {
		e.Size = info.Size()
	}
	return e
}
