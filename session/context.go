package session

import (
	"github.com/flanksource/bsharp-analyzer/config"
	"github.com/flanksource/bsharp-analyzer/diagnostic"
)

// Context is the per-file, read-only part of a Session: the file path,
// source text, and the resolved AnalysisConfig shared across every pass.
type Context struct {
	FilePath   string
	SourceText string
	Config     *config.AnalysisConfig

	lineStarts []int // byte offset of the first byte of each line, computed by NewContext
}

// NewContext builds a Context and pre-computes the line-start table used by
// LocationFromSpan.
func NewContext(filePath, sourceText string, cfg *config.AnalysisConfig) *Context {
	c := &Context{FilePath: filePath, SourceText: sourceText, Config: cfg}
	c.computeLineStarts()
	return c
}

func (c *Context) computeLineStarts() {
	c.lineStarts = []int{0}
	for i, b := range []byte(c.SourceText) {
		if b == '\n' {
			c.lineStarts = append(c.lineStarts, i+1)
		}
	}
}

// LocationFromSpan resolves a byte offset (and an unused length, kept for
// interface symmetry with spec.md §6's `location_from_span(start, len)`)
// into a 1-based line/column Location.
func (c *Context) LocationFromSpan(start, _ int) diagnostic.Location {
	if start < 0 {
		start = 0
	}
	line := sort_SearchLineStarts(c.lineStarts, start)
	lineStart := c.lineStarts[line]
	column := start - lineStart + 1
	return diagnostic.Location{File: c.FilePath, Line: line + 1, Column: column}
}

// sort_SearchLineStarts returns the index of the last line-start <= offset.
func sort_SearchLineStarts(lineStarts []int, offset int) int {
	lo, hi := 0, len(lineStarts)-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if lineStarts[mid] <= offset {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}
