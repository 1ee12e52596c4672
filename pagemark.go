// Package pagemark converts structured OCR output into Markdown that
// preserves the visual and logical structure of the original page:
// headings, paragraphs, lists, tables, code blocks, quotes, and emphasis.
//
// Basic usage:
//
//	md, err := pagemark.FromJSON(ocrResponse).Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	md, err := pagemark.FromJSON(ocrResponse).
//	    Basic().
//	    Markdown()
//
// The pipeline is a pure, synchronous transformation: OCR regions are
// sorted into reading order, each line is classified into a structural
// role, consecutive compatible lines are aggregated into blocks, and the
// blocks are rendered as Markdown. Each call is independent; concurrent
// conversions are safe without locking.
//
// For advanced use cases the lower-level layout, tables, and markdown
// packages are also available.
package pagemark

import (
	"github.com/tsawler/pagemark/model"
)

// FromJSON creates a Converter from a raw OCR API response body.
// The JSON must be a recognizable OCR result shape; anything else
// surfaces as a model.ErrMalformedInput-wrapped error from the terminal
// operation.
//
// Example:
//
//	md, err := pagemark.FromJSON(data).Markdown()
func FromJSON(data []byte) *Converter {
	result, err := model.ParseResult(data)
	if err != nil {
		return &Converter{err: err, options: defaultOptions()}
	}
	return FromResult(result)
}

// FromResult creates a Converter from an already-parsed OCR result
func FromResult(result *model.Result) *Converter {
	if result == nil {
		return &Converter{
			err:     model.ErrMalformedInput,
			options: defaultOptions(),
		}
	}
	return FromRegions(result.Regions)
}

// FromRegions creates a Converter directly from OCR regions.
// An empty slice converts to empty output, not an error.
func FromRegions(regions []model.Region) *Converter {
	return &Converter{
		regions: regions,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := pagemark.Must(pagemark.FromJSON(data).Markdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
