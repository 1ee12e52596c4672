package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagemark/model"
)

// RenderConfig holds configuration for Markdown output
type RenderConfig struct {
	// BulletMarker is the marker used for unordered list items.
	// Default: "-".
	BulletMarker string

	// Fence is the code fence delimiter. Default: three backticks.
	Fence string

	// TagFences controls whether detected code-block languages are
	// written as fence info strings. Default: true.
	TagFences bool
}

// DefaultRenderConfig returns sensible default configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		BulletMarker: "-",
		Fence:        "```",
		TagFences:    true,
	}
}

// Renderer renders blocks as Markdown text
type Renderer struct {
	config RenderConfig
}

// NewRenderer creates a renderer with default configuration
func NewRenderer() *Renderer {
	return NewRendererWithConfig(DefaultRenderConfig())
}

// NewRendererWithConfig creates a renderer with custom configuration
func NewRendererWithConfig(config RenderConfig) *Renderer {
	return &Renderer{config: config}
}

// Render renders the block sequence as a single Markdown string.
// Blocks are separated by exactly one blank line. The result carries no
// trailing newline; callers writing files append their own.
func (r *Renderer) Render(blocks []model.Block) string {
	rendered := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if s := r.renderBlock(block); s != "" {
			rendered = append(rendered, s)
		}
	}
	return strings.Join(rendered, "\n\n")
}

// renderBlock renders one block without surrounding separation
func (r *Renderer) renderBlock(block model.Block) string {
	switch b := block.(type) {
	case *model.Heading:
		return r.renderHeading(b)
	case *model.Paragraph:
		return b.Text
	case *model.List:
		return r.renderList(b)
	case *model.Table:
		return r.renderTable(b)
	case *model.CodeBlock:
		return r.renderCode(b)
	case *model.Quote:
		return r.renderQuote(b)
	default:
		return block.GetText()
	}
}

func (r *Renderer) renderHeading(h *model.Heading) string {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + h.Text
}

// renderList renders one item per line. Ordered items are renumbered
// sequentially regardless of the numerals the OCR source carried.
func (r *Renderer) renderList(l *model.List) string {
	var sb strings.Builder
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		if l.Ordered {
			fmt.Fprintf(&sb, "%d. %s", i+1, item)
		} else {
			sb.WriteString(r.config.BulletMarker)
			sb.WriteString(" ")
			sb.WriteString(item)
		}
	}
	return sb.String()
}

// renderTable emits the header row, a synthesized separator row, and the
// body rows, pipe-delimited with trimmed cells.
func (r *Renderer) renderTable(t *model.Table) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for _, cell := range cells {
			sb.WriteString(" ")
			sb.WriteString(strings.TrimSpace(cell))
			sb.WriteString(" |")
		}
	}

	writeRow(t.Rows[0])
	sb.WriteString("\n|")
	for range t.Rows[0] {
		sb.WriteString(" --- |")
	}
	for _, row := range t.Rows[1:] {
		sb.WriteString("\n")
		writeRow(row)
	}
	return sb.String()
}

func (r *Renderer) renderCode(c *model.CodeBlock) string {
	fence := r.config.Fence
	opening := fence
	if r.config.TagFences && c.Language != "" {
		opening += c.Language
	}

	var sb strings.Builder
	sb.WriteString(opening)
	for _, line := range c.Lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	sb.WriteString("\n")
	sb.WriteString(fence)
	return sb.String()
}

func (r *Renderer) renderQuote(q *model.Quote) string {
	lines := strings.Split(q.Text, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
