// Package model provides the intermediate representation (IR) for OCR
// results and the reconstructed document structure.
//
// This package defines the types every other package consumes: the read-only
// snapshot of one OCR response ([Result], [Region], [Line], [Word]) and the
// structural blocks produced by the reconstruction pipeline ([Heading],
// [Paragraph], [List], [Table], [CodeBlock], [Quote]).
//
// # OCR Input
//
// A [Result] is a parsed OCR response: an ordered list of [Region] values,
// each holding ordered [Line] values with recognized text and bounding-box
// geometry. [ParseResult] builds a Result from the raw JSON returned by the
// Youdao OCR API, including its string-encoded bounding boxes ("x,y,w,h" or
// a four-corner polygon).
//
// # Blocks
//
// All reconstructed content implements the [Block] interface. Blocks are
// produced once per conversion and never mutated afterwards; the markdown
// package renders them.
//
// # Geometry
//
// [BBox] uses image coordinates: the origin is the top-left corner of the
// page and Y increases downward. This matches what OCR engines report and is
// the opposite of the PDF convention.
package model
