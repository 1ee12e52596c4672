// Package tables infers tabular structure from groups of OCR text lines.
//
// OCR output carries no cell geometry, only text, so the [Builder] works
// from delimiters: each candidate row is split on runs of two or more
// spaces or a tab, the column count is taken as the mode of the per-row
// segment counts, and rows are padded or merged to fit. Groups without
// real columnar structure (mode of one) are rejected so the caller can
// fall back to plain paragraphs. Shape failure is a degradation, never
// an error.
package tables
