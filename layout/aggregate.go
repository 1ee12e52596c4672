package layout

import (
	"strings"

	"github.com/tsawler/pagemark/model"
	"github.com/tsawler/pagemark/tables"
)

// blockState is the kind of block currently open in the aggregator
type blockState int

const (
	stateNone blockState = iota
	stateParagraph
	stateList
	stateTable
	stateCode
	stateQuote
)

// Aggregator groups a classified, ordered line sequence into blocks.
//
// It is a single-pass state machine: each incoming line either extends the
// currently open block (another code line while a code block is open,
// another list item of the same marker kind while a list is open) or closes
// it and opens a new one. Headings close immediately; a blank line always
// closes the open block. The final open block is flushed at end of input.
//
// An Aggregator holds no state between calls to Aggregate and is safe for
// concurrent use.
type Aggregator struct {
	tables *tables.Builder
}

// NewAggregator creates an aggregator with a default table builder
func NewAggregator() *Aggregator {
	return &Aggregator{tables: tables.NewBuilder()}
}

// NewAggregatorWithBuilder creates an aggregator using a custom table builder
func NewAggregatorWithBuilder(b *tables.Builder) *Aggregator {
	return &Aggregator{tables: b}
}

// Aggregate walks the classified lines in order and returns the finished
// block sequence. The input order is trusted; nothing is re-sorted.
func (a *Aggregator) Aggregate(lines []ClassifiedLine) []model.Block {
	var blocks []model.Block

	state := stateNone
	var acc []string      // content of the open block
	var marker MarkerKind // open list's marker kind

	flush := func() {
		if state == stateNone || len(acc) == 0 {
			state = stateNone
			acc = nil
			return
		}
		switch state {
		case stateParagraph:
			blocks = append(blocks, &model.Paragraph{Text: strings.Join(acc, " ")})
		case stateList:
			blocks = append(blocks, &model.List{
				Ordered: marker == MarkerNumbered,
				Items:   append([]string(nil), acc...),
			})
		case stateTable:
			if table, ok := a.tables.Build(acc); ok {
				blocks = append(blocks, table)
			} else {
				// Shape failure: degrade each row to its own paragraph
				for _, row := range acc {
					blocks = append(blocks, &model.Paragraph{Text: row})
				}
			}
		case stateCode:
			blocks = append(blocks, &model.CodeBlock{
				Language: detectLanguage(acc),
				Lines:    append([]string(nil), acc...),
			})
		case stateQuote:
			blocks = append(blocks, &model.Quote{Text: strings.Join(acc, "\n")})
		}
		state = stateNone
		acc = nil
	}

	open := func(s blockState, body string) {
		state = s
		acc = []string{body}
	}

	for _, line := range lines {
		if line.IsBlank() {
			flush()
			continue
		}

		switch line.Role {
		case RoleHeading:
			flush()
			blocks = append(blocks, &model.Heading{Level: line.Level, Text: line.Body})

		case RoleEmphasis:
			flush()
			blocks = append(blocks, &model.Paragraph{Text: "**" + line.Body + "**"})

		case RoleListItem:
			if state == stateList && marker == line.Marker {
				acc = append(acc, line.Body)
			} else {
				flush()
				open(stateList, line.Body)
				marker = line.Marker
			}

		case RoleTableRow:
			if state == stateTable {
				acc = append(acc, line.Body)
			} else {
				flush()
				open(stateTable, line.Body)
			}

		case RoleCodeLine:
			if state == stateCode {
				acc = append(acc, line.Body)
			} else {
				flush()
				open(stateCode, line.Body)
			}

		case RoleQuote:
			if state == stateQuote {
				acc = append(acc, line.Body)
			} else {
				flush()
				open(stateQuote, line.Body)
			}

		default: // RolePlainText
			if state == stateParagraph {
				acc = append(acc, line.Body)
			} else {
				flush()
				open(stateParagraph, line.Body)
			}
		}
	}

	// The last open block must never be dropped
	flush()

	return blocks
}

// detectLanguage guesses a fence language from the accumulated code lines.
// Empty means no confident detection; the fence is then left untagged.
func detectLanguage(lines []string) string {
	joined := strings.Join(lines, "\n")

	switch {
	case strings.Contains(joined, "def ") || strings.Contains(joined, "print("):
		return "python"
	case strings.Contains(joined, "package ") || strings.Contains(joined, "func "):
		return "go"
	case strings.Contains(joined, "function ") || strings.Contains(joined, "=>") ||
		strings.Contains(joined, "const ") || strings.Contains(joined, "let "):
		return "javascript"
	default:
		return ""
	}
}
