package pagemark

import (
	"strings"

	"github.com/tsawler/pagemark/layout"
	"github.com/tsawler/pagemark/markdown"
	"github.com/tsawler/pagemark/model"
	"github.com/tsawler/pagemark/tables"
)

// Converter provides a fluent interface for converting OCR output to
// Markdown. Each configuration method returns a new Converter instance,
// making chains safe to share and reuse.
type Converter struct {
	regions []model.Region
	options ConvertOptions

	// Accumulated error (fail-fast); terminal operations return it
	err error
}

// clone creates a copy of the Converter with copied options.
// The region slice is shared: regions are read-only snapshots.
func (c *Converter) clone() *Converter {
	return &Converter{
		regions: c.regions,
		options: c.options.clone(),
		err:     c.err,
	}
}

// Basic selects the basic configuration: no table or code detection.
// Lines that would have matched those rules classify as plain text,
// quote, or emphasis only.
func (c *Converter) Basic() *Converter {
	newConv := c.clone()
	newConv.options.mode = ModeBasic
	return newConv
}

// Advanced selects the advanced configuration with every rule enabled.
// This is the default.
func (c *Converter) Advanced() *Converter {
	newConv := c.clone()
	newConv.options.mode = ModeAdvanced
	return newConv
}

// WithClassifierConfig replaces the classifier rule set, for callers
// whose documents follow different language or numbering conventions.
// The mode still applies on top: Basic() disables code and table rules
// even in a custom rule set.
func (c *Converter) WithClassifierConfig(config layout.ClassifierConfig) *Converter {
	newConv := c.clone()
	newConv.options.classifier = &config
	return newConv
}

// WithTableConfig replaces the table builder configuration
func (c *Converter) WithTableConfig(config tables.BuilderConfig) *Converter {
	newConv := c.clone()
	newConv.options.tables = config
	return newConv
}

// WithRenderConfig replaces the Markdown rendering configuration
func (c *Converter) WithRenderConfig(config markdown.RenderConfig) *Converter {
	newConv := c.clone()
	newConv.options.render = config
	return newConv
}

// Blocks runs the pipeline up to block aggregation and returns the
// reconstructed block sequence in reading order.
func (c *Converter) Blocks() ([]model.Block, error) {
	if c.err != nil {
		return nil, c.err
	}

	sorted := layout.SortRegions(c.regions)
	classifier := layout.NewClassifierWithConfig(c.options.classifierConfig())

	var classified []layout.ClassifiedLine
	for _, region := range sorted {
		vertical := region.Dir == model.Vertical
		for _, line := range region.Lines {
			cl := classifier.ClassifyLine(line)
			if vertical && !cl.IsBlank() {
				// Vertical text renders as quotation regardless of
				// its textual shape
				cl.Role = layout.RoleQuote
				cl.Body = strings.TrimSpace(line.Text)
			}
			classified = append(classified, cl)
		}
	}

	aggregator := layout.NewAggregatorWithBuilder(
		tables.NewBuilderWithConfig(c.options.tables))
	return aggregator.Aggregate(classified), nil
}

// Markdown runs the full pipeline and returns the document as a single
// UTF-8 Markdown string. Well-formed but empty input yields an empty
// string; only an unrecognizable input shape returns an error.
//
// Example:
//
//	md, err := pagemark.FromJSON(data).Advanced().Markdown()
func (c *Converter) Markdown() (string, error) {
	blocks, err := c.Blocks()
	if err != nil {
		return "", err
	}
	renderer := markdown.NewRendererWithConfig(c.options.render)
	return renderer.Render(blocks), nil
}
