package main

// Kind is the effective kind of a directory entry. Symlinks resolve to
// their target's kind, so a link to a directory is a KindDir.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Entry is one visible directory member, classified and ready to render.
type Entry struct {
	Name   string
	Path   string
	Kind   Kind
	IsLink bool
	Target string // symlink destination, verbatim from readlink
	Broken bool   // symlink whose target cannot be resolved
	Size   int64  // regular files and resolved file links only
	Tokens int    // -1 until a token counter fills it in
}

// Options control one traversal.
type Options struct {
	ShowHidden bool
	DirsOnly   bool
	MaxLevel   int // 0 means unlimited
	ShowSizes  bool
	Color      bool
	Counter    TokenCounter // nil disables token counting
}

// Stats accumulates the totals reported in the summary line.
type Stats struct {
	Dirs  int
	Files int
}
