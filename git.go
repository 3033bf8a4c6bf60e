package main

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	log "github.com/sirupsen/logrus"
)

// isGitURL reports whether input names a remote repository rather than a
// local path. Plain https:// URLs without the .git suffix are treated as
// local paths because they are ambiguous.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@")
}

// cloneRepo checks out the default branch of url into a temporary
// directory and returns its path. The caller removes the directory when
// done with it. Clone progress goes to stderr so it never mixes into the
// report.
func cloneRepo(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "arbor-git-")
	if err != nil {
		return "", fmt.Errorf("create temporary directory: %w", err)
	}

	log.Infof("cloning %s into %s", url, tempDir)
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      os.Stderr,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
		Depth:         1, // only the worktree is rendered
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("clone %s: %w", url, err)
	}
	return tempDir, nil
}
