package main

import (
	"fmt"
	"os"

	tiktoken "github.com/pkoukk/tiktoken-go"
	log "github.com/sirupsen/logrus"
)

// TokenCounter counts text tokens for one model's encoding.
type TokenCounter interface {
	CountTokens(text string) int
	Close()
}

const defaultTokenModel = "gpt-4o"

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c *tiktokenCounter) CountTokens(text string) int {
	if c.enc == nil {
		return 0
	}
	return len(c.enc.EncodeOrdinary(text))
}

func (c *tiktokenCounter) Close() {
	// tiktoken-go holds no resources that need releasing
}

// newTokenCounter builds a counter for model, falling back to the default
// encoding when the model is unknown.
func newTokenCounter(model string) (TokenCounter, error) {
	if model == "" {
		model = defaultTokenModel
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		log.Warnf("no encoding for model %q, falling back to %s: %v", model, defaultTokenModel, err)
		enc, err = tiktoken.EncodingForModel(defaultTokenModel)
		if err != nil {
			return nil, fmt.Errorf("load encoding for %s: %w", defaultTokenModel, err)
		}
	}
	return &tiktokenCounter{enc: enc}, nil
}

// countFileTokens reads path and returns its token count, or -1 when the
// file cannot be read.
func countFileTokens(tc TokenCounter, path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("cannot read %s for token counting: %v", path, err)
		return -1
	}
	return tc.CountTokens(string(content))
}
