package tables

import (
	"regexp"
	"strings"

	"github.com/tsawler/pagemark/model"
)

// BuilderConfig holds configuration for table shape inference
type BuilderConfig struct {
	// Delimiter splits a row into cell segments. Must match the rule used
	// for table-row detection so detection and building agree.
	// Default: a run of two or more spaces, or a tab.
	Delimiter *regexp.Regexp

	// MinColumns is the minimum mode column count for a group to form a
	// table. Groups below it are rejected. Default: 2.
	MinColumns int
}

// DefaultBuilderConfig returns sensible default configuration
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Delimiter:  regexp.MustCompile(`\s{2,}|\t`),
		MinColumns: 2,
	}
}

// Builder infers a table grid from a group of candidate rows
type Builder struct {
	config BuilderConfig
}

// NewBuilder creates a builder with default configuration
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	return &Builder{config: config}
}

// Build infers column structure for the candidate rows. It returns the
// table and true on success, or nil and false when the group has no real
// columnar shape and should be treated as plain paragraphs instead.
//
// The column count is the mode of the per-row segment counts. Rows with
// fewer segments are right-padded with empty cells; rows with more have
// their trailing segments merged into the last expected cell. Cell text
// is trimmed. The first row becomes the header row; the Markdown separator
// is synthesized at render time, never inferred from OCR.
func (b *Builder) Build(rows []string) (*model.Table, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	segmented := make([][]string, 0, len(rows))
	for _, row := range rows {
		segmented = append(segmented, b.splitRow(row))
	}

	cols := modeCount(segmented)
	if cols < b.config.MinColumns {
		return nil, false
	}

	table := &model.Table{Rows: make([][]string, 0, len(segmented))}
	for _, segments := range segmented {
		table.Rows = append(table.Rows, fitRow(segments, cols))
	}
	return table, true
}

// splitRow splits one row into trimmed, non-empty cell segments
func (b *Builder) splitRow(row string) []string {
	parts := b.config.Delimiter.Split(strings.TrimSpace(row), -1)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// modeCount returns the most frequent segment count across rows.
// Ties are broken toward the smaller count.
func modeCount(segmented [][]string) int {
	counts := make(map[int]int)
	for _, segments := range segmented {
		counts[len(segments)]++
	}

	mode, best := 0, 0
	for count, freq := range counts {
		if freq > best || (freq == best && count < mode) {
			mode, best = count, freq
		}
	}
	return mode
}

// fitRow forces a segment list to exactly cols cells: short rows are
// right-padded with empty cells, long rows merge the overflow into the
// last cell.
func fitRow(segments []string, cols int) []string {
	row := make([]string, cols)

	if len(segments) <= cols {
		copy(row, segments)
		return row
	}

	copy(row, segments[:cols-1])
	row[cols-1] = strings.Join(segments[cols-1:], " ")
	return row
}
