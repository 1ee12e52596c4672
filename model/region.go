package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when the structure handed to the pipeline
// is not a recognizable OCR result (missing Result/regions fields entirely).
// Degraded-but-recognizable input (empty regions, empty lines) is not an
// error; it converts to empty output.
var ErrMalformedInput = errors.New("malformed OCR result")

// TextDirection indicates the writing direction of a region
type TextDirection string

const (
	// Horizontal text reads top-to-bottom, lines left-to-right
	Horizontal TextDirection = "h"
	// Vertical text reads in columns; lines are ordered left-to-right by X
	Vertical TextDirection = "v"
)

// Word is a single recognized word with its geometry
type Word struct {
	Text string
	BBox BBox
}

// Line is one recognized text line. Lines are owned by exactly one Region
// and are immutable once produced by OCR.
type Line struct {
	Text  string
	Words []Word
	BBox  BBox
}

// Region is a group of lines the OCR engine recognized together
type Region struct {
	Lang  string
	Dir   TextDirection
	Lines []Line
	BBox  BBox
}

// Result is a read-only snapshot of one OCR API response
type Result struct {
	Orientation string
	Regions     []Region
}

// Raw JSON shapes for the Youdao OCR response. Bounding boxes arrive as
// strings, not objects.
type rawResult struct {
	ErrorCode string           `json:"errorCode"`
	Result    *json.RawMessage `json:"Result"`
}

type rawResultBody struct {
	Orientation string      `json:"orientation"`
	Regions     []rawRegion `json:"regions"`
}

type rawRegion struct {
	Lang        string    `json:"lang"`
	Dir         string    `json:"dir"`
	BoundingBox string    `json:"boundingBox"`
	Lines       []rawLine `json:"lines"`
}

type rawLine struct {
	Text        string    `json:"text"`
	BoundingBox string    `json:"boundingBox"`
	Words       []rawWord `json:"words"`
}

type rawWord struct {
	Word        string `json:"word"`
	BoundingBox string `json:"boundingBox"`
}

// ParseResult parses a raw OCR API response body into a Result.
// It returns an error wrapping ErrMalformedInput if the payload is not a
// recognizable OCR result shape; it does not validate language codes,
// status fields, or image metadata.
func ParseResult(data []byte) (*Result, error) {
	var raw rawResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if raw.Result == nil {
		return nil, fmt.Errorf("%w: missing Result field", ErrMalformedInput)
	}

	var body rawResultBody
	if err := json.Unmarshal(*raw.Result, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	result := &Result{Orientation: body.Orientation}
	for _, r := range body.Regions {
		result.Regions = append(result.Regions, r.toRegion())
	}
	return result, nil
}

func (r rawRegion) toRegion() Region {
	dir := TextDirection(r.Dir)
	if dir != Vertical {
		dir = Horizontal
	}

	region := Region{
		Lang: r.Lang,
		Dir:  dir,
		BBox: ParseBBox(r.BoundingBox),
	}
	for _, l := range r.Lines {
		line := Line{
			Text: l.Text,
			BBox: ParseBBox(l.BoundingBox),
		}
		for _, w := range l.Words {
			line.Words = append(line.Words, Word{
				Text: w.Word,
				BBox: ParseBBox(w.BoundingBox),
			})
		}
		region.Lines = append(region.Lines, line)
	}
	return region
}

// LineCount returns the total number of lines across all regions
func (r *Result) LineCount() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, region := range r.Regions {
		count += len(region.Lines)
	}
	return count
}

// Text returns all recognized text joined with newlines, in the order
// the regions were received (no reading-order sorting)
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	var out []byte
	for _, region := range r.Regions {
		for _, line := range region.Lines {
			out = append(out, line.Text...)
			out = append(out, '\n')
		}
	}
	return string(out)
}
