package pagemark

import (
	"github.com/tsawler/pagemark/layout"
	"github.com/tsawler/pagemark/markdown"
	"github.com/tsawler/pagemark/tables"
)

// Mode selects which classification rules the pipeline runs
type Mode int

const (
	// ModeAdvanced enables every rule, including code and table detection
	ModeAdvanced Mode = iota

	// ModeBasic disables code and table detection; lines that would have
	// matched those rules classify as plain text, quote, or emphasis only
	ModeBasic
)

// String returns a string representation of the mode
func (m Mode) String() string {
	if m == ModeBasic {
		return "basic"
	}
	return "advanced"
}

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	mode Mode

	// classifier overrides the default rule set when non-nil
	classifier *layout.ClassifierConfig

	tables tables.BuilderConfig
	render markdown.RenderConfig
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		mode:   ModeAdvanced,
		tables: tables.DefaultBuilderConfig(),
		render: markdown.DefaultRenderConfig(),
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := o
	if o.classifier != nil {
		cfg := *o.classifier
		newOpts.classifier = &cfg
	}
	return newOpts
}

// classifierConfig resolves the effective classifier configuration:
// the override if set, otherwise the defaults, with the rule gates forced
// to match the selected mode.
func (o ConvertOptions) classifierConfig() layout.ClassifierConfig {
	cfg := layout.DefaultClassifierConfig()
	if o.classifier != nil {
		cfg = *o.classifier
	}
	if o.mode == ModeBasic {
		cfg.DetectCode = false
		cfg.DetectTables = false
	}
	return cfg
}
