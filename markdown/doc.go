// Package markdown renders reconstructed document blocks as Markdown text.
//
// The [Renderer] consumes the block sequence produced by the layout package
// and emits standard Markdown syntax: ATX headings, renumbered ordered
// lists, pipe tables with a synthesized separator row, fenced code blocks,
// and "> " quotations. Blocks are separated by exactly one blank line;
// lines inside a list, table, code block, or quotation are intra-block
// line breaks, not separators.
package markdown
