// Package layout turns geometrically ordered OCR lines into structured
// document blocks.
//
// The package contains the three pipeline stages with nontrivial logic:
//
//   - [SortRegions] puts regions and their lines into top-to-bottom,
//     left-to-right reading order using bounding-box coordinates.
//   - [Classifier] assigns each line a structural role (heading, list item,
//     quote, emphasis, code line, table row candidate, or plain text) by
//     trying an ordered list of pattern rules, first match wins.
//   - [Aggregator] walks the classified lines with a single-pass state
//     machine and groups compatible neighbors into blocks: consecutive code
//     lines into one code block, table row candidates into a table,
//     list items of the same marker kind into one list.
//
// All pattern lists live in [ClassifierConfig] so alternate rule sets (other
// language conventions) can be substituted without modifying the classifier:
//
//	classifier := layout.NewClassifierWithConfig(myConfig)
//	classified := classifier.ClassifyLine(line)
//
// Classification depends only on a line's text. Geometry is consumed by
// [SortRegions] and never re-inspected downstream; the aggregator assumes
// the incoming order is already correct and never re-sorts.
package layout
