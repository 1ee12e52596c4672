package model

import "strings"

// BlockKind represents the kind of reconstructed block
type BlockKind int

const (
	BlockKindUnknown BlockKind = iota
	BlockKindHeading
	BlockKindParagraph
	BlockKindList
	BlockKindTable
	BlockKindCode
	BlockKindQuote
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindHeading:
		return "Heading"
	case BlockKindParagraph:
		return "Paragraph"
	case BlockKindList:
		return "List"
	case BlockKindTable:
		return "Table"
	case BlockKindCode:
		return "CodeBlock"
	case BlockKindQuote:
		return "Quote"
	default:
		return "Unknown"
	}
}

// Block is the interface for all reconstructed document blocks.
// Blocks are produced once per conversion and never mutated after creation.
type Block interface {
	Kind() BlockKind
	GetText() string
}

// Heading is a single-line heading with a level from 1 to 6
type Heading struct {
	Level int
	Text  string
}

func (h *Heading) Kind() BlockKind { return BlockKindHeading }
func (h *Heading) GetText() string { return h.Text }

// Paragraph is a run of plain text. Text holds the paragraph already joined
// into a single string; source lines are joined with single spaces.
type Paragraph struct {
	Text string
}

func (p *Paragraph) Kind() BlockKind { return BlockKindParagraph }
func (p *Paragraph) GetText() string { return p.Text }

// List is a bulleted or numbered list. Items hold the item text without
// marker prefixes; numbered lists are renumbered sequentially on output.
type List struct {
	Ordered bool
	Items   []string
}

func (l *List) Kind() BlockKind { return BlockKindList }
func (l *List) GetText() string {
	return strings.Join(l.Items, "\n")
}

// Table is a grid of cells. The first row is treated as the header row;
// the Markdown separator row is synthesized on output, never stored.
type Table struct {
	Rows [][]string
}

func (t *Table) Kind() BlockKind { return BlockKindTable }
func (t *Table) GetText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(row, "\t"))
	}
	return sb.String()
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// CodeBlock is a fenced code block. Language is the fence info string,
// empty when no language was confidently detected.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (c *CodeBlock) Kind() BlockKind { return BlockKindCode }
func (c *CodeBlock) GetText() string {
	return strings.Join(c.Lines, "\n")
}

// Quote is a block quotation. Text may span multiple lines separated by
// newlines; each is prefixed with "> " on output.
type Quote struct {
	Text string
}

func (q *Quote) Kind() BlockKind { return BlockKindQuote }
func (q *Quote) GetText() string { return q.Text }
