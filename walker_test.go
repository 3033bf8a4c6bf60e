package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root string, dirs []string, files map[string]string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}
}

func TestWalkSkipsHiddenEntries(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{"sub"}, map[string]string{
		"a.txt":     "alpha",
		".secret":   "shh",
		"sub/b.txt": "beta",
	})

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{}, &stats))

	want := "├── a.txt\n└── sub/\n    └── b.txt\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, Stats{Dirs: 1, Files: 2}, stats)
}

func TestWalkShowHidden(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{".config"}, map[string]string{
		"a.txt":        "alpha",
		".secret":      "shh",
		".config/rc":   "set",
		".config/rc.d": "more",
	})

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{ShowHidden: true}, &stats))

	want := strings.Join([]string{
		"├── .config/",
		"│   ├── rc",
		"│   └── rc.d",
		"├── .secret",
		"└── a.txt",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, Stats{Dirs: 1, Files: 4}, stats)
}

func TestWalkEmptyRoot(t *testing.T) {
	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, t.TempDir(), nil, Options{}, &stats))

	assert.Empty(t, out.String())
	assert.Equal(t, Stats{}, stats)
}

func TestWalkMissingRoot(t *testing.T) {
	var out strings.Builder
	var stats Stats
	err := walk(&out, filepath.Join(t.TempDir(), "gone"), nil, Options{}, &stats)

	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestWalkDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{"b", "a/inner"}, map[string]string{
		"c.txt":       "c",
		"a/one.txt":   "1",
		"a/two.txt":   "2",
		"b/three.go":  "3",
		"a/inner/x.y": "xy",
	})

	render := func() string {
		var out strings.Builder
		var stats Stats
		require.NoError(t, walk(&out, root, nil, Options{}, &stats))
		return out.String()
	}
	assert.Equal(t, render(), render())
}

func TestWalkCountsMatchRenderedLines(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{"docs", "src/pkg", ".cache"}, map[string]string{
		"readme.md":     "hi",
		".env":          "secret",
		"docs/guide.md": "guide",
		"src/main.go":   "package main",
		"src/pkg/p.go":  "package pkg",
	})

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{}, &stats))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, stats.Dirs+stats.Files)
}

func TestWalkAncestorColumns(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{"first/mid/deep", "second/mid/deep"}, map[string]string{
		"first/mid/deep/leaf.txt":  "a",
		"second/mid/deep/leaf.txt": "b",
	})

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{}, &stats))

	// first still has a sibling below it, so its subtree keeps the bar;
	// second is the last entry, so its subtree gets blank columns.
	want := strings.Join([]string{
		"├── first/",
		"│   └── mid/",
		"│       └── deep/",
		"│           └── leaf.txt",
		"└── second/",
		"    └── mid/",
		"        └── deep/",
		"            └── leaf.txt",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, Stats{Dirs: 6, Files: 2}, stats)
}

func TestWalkPreservesAncestors(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{"sub"}, map[string]string{"sub/f.txt": "x"})

	ancestors := []bool{true, false}
	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, ancestors, Options{}, &stats))

	assert.Equal(t, []bool{true, false}, ancestors)
}

func TestWalkMaxLevel(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{"top/nested"}, map[string]string{
		"a.txt":               "a",
		"top/nested/deep.txt": "d",
	})

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{MaxLevel: 1}, &stats))

	assert.Equal(t, "├── a.txt\n└── top/\n", out.String())
	assert.Equal(t, Stats{Dirs: 1, Files: 1}, stats)

	out.Reset()
	stats = Stats{}
	require.NoError(t, walk(&out, root, nil, Options{MaxLevel: 2}, &stats))

	assert.Equal(t, "├── a.txt\n└── top/\n    └── nested/\n", out.String())
	assert.Equal(t, Stats{Dirs: 2, Files: 1}, stats)
}

func TestWalkDirsOnly(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, []string{"docs", "src"}, map[string]string{
		"readme.md":   "hi",
		"src/main.go": "package main",
	})

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{DirsOnly: true}, &stats))

	assert.Equal(t, "├── docs/\n└── src/\n", out.String())
	assert.Equal(t, Stats{Dirs: 2, Files: 0}, stats)
}

func TestWalkShowSizes(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, nil, map[string]string{
		"data.bin":  strings.Repeat("x", 1536),
		"empty.txt": "",
	})

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{ShowSizes: true}, &stats))

	assert.Equal(t, "├── data.bin (1.5K)\n└── empty.txt (empty)\n", out.String())
}

func TestWalkUnreadableDirBecomesLeaf(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits work differently on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind root")
	}

	root := t.TempDir()
	writeFixture(t, root, []string{"locked"}, map[string]string{
		"locked/inside.txt": "x",
		"z.txt":             "z",
	})
	require.NoError(t, os.Chmod(filepath.Join(root, "locked"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(root, "locked"), 0o755) })

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{}, &stats))

	assert.Equal(t, "├── locked/\n└── z.txt\n", out.String())
	assert.Equal(t, Stats{Dirs: 1, Files: 1}, stats)
}

func TestWalkSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on windows")
	}

	root := t.TempDir()
	writeFixture(t, root, []string{"real"}, map[string]string{
		"real/inner.txt": "in",
		"file.txt":       "f",
	})
	require.NoError(t, os.Symlink("real", filepath.Join(root, "dirlink")))
	require.NoError(t, os.Symlink("file.txt", filepath.Join(root, "filelink")))
	require.NoError(t, os.Symlink("missing", filepath.Join(root, "broken")))

	var out strings.Builder
	var stats Stats
	require.NoError(t, walk(&out, root, nil, Options{}, &stats))

	want := strings.Join([]string{
		"├── broken -> missing",
		"├── dirlink -> real",
		"│   └── inner.txt",
		"├── file.txt",
		"├── filelink -> file.txt",
		"└── real/",
		"    └── inner.txt",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, Stats{Dirs: 2, Files: 5}, stats)
}
