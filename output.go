package main

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/charmbracelet/lipgloss"
)

// termenv parses only numeric or hex color strings, so the styles name
// their colors by ANSI palette index.
var (
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true) // blue
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))            // cyan
	brokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))            // red
)

// renderLine produces the report line for e. Each ancestor contributes a
// continuation column: a bar while that ancestor still has siblings below
// it, blank space once it was the last one. The entry itself gets a tee,
// or an elbow when no siblings follow.
func renderLine(e Entry, ancestors []bool, last bool, opts Options) string {
	var b strings.Builder
	for _, wasLast := range ancestors {
		if wasLast {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}
	if last {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	b.WriteString(displayName(e, opts))
	return b.String()
}

// displayName is the entry name plus its decorations: a trailing slash on
// directories, the symlink target, and the optional size and token
// suffixes.
func displayName(e Entry, opts Options) string {
	name := e.Name
	if e.Kind == KindDir && !e.IsLink {
		name += "/"
	}
	if opts.Color {
		name = colorize(name, e)
	}
	if e.IsLink && e.Target != "" {
		name += " -> " + e.Target
	}
	if opts.ShowSizes && e.Kind == KindFile && !e.Broken {
		if e.Size == 0 {
			name += " (empty)"
		} else {
			name += fmt.Sprintf(" (%s)", bytefmt.ByteSize(uint64(e.Size)))
		}
	}
	if opts.Counter != nil && e.Tokens >= 0 {
		name += fmt.Sprintf(" (%d tokens)", e.Tokens)
	}
	return name
}

// colorize styles name following the conventional ls palette.
func colorize(name string, e Entry) string {
	switch {
	case e.Broken:
		return brokenStyle.Render(name)
	case e.IsLink:
		return linkStyle.Render(name)
	case e.Kind == KindDir:
		return dirStyle.Render(name)
	}
	return name
}

// summaryLine formats the closing totals. With DirsOnly no file was
// eligible for the report, so only the directory count is printed.
func summaryLine(stats Stats, opts Options) string {
	if opts.DirsOnly {
		return fmt.Sprintf("%d directories", stats.Dirs)
	}
	return fmt.Sprintf("%d directories, %d files", stats.Dirs, stats.Files)
}
