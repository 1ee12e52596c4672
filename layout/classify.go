package layout

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/tsawler/pagemark/model"
)

// Role represents the structural role assigned to one OCR line
type Role int

const (
	RolePlainText Role = iota
	RoleHeading
	RoleListItem
	RoleQuote
	RoleEmphasis
	RoleCodeLine
	RoleTableRow
)

// String returns a string representation of the role
func (r Role) String() string {
	switch r {
	case RoleHeading:
		return "heading"
	case RoleListItem:
		return "list-item"
	case RoleQuote:
		return "quote"
	case RoleEmphasis:
		return "emphasis"
	case RoleCodeLine:
		return "code-line"
	case RoleTableRow:
		return "table-row"
	default:
		return "plain-text"
	}
}

// MarkerKind distinguishes how a list item was marked in the source.
// Numbered items render with sequential numbers regardless of the source
// numeral; bulleted items render with a single bullet marker.
type MarkerKind int

const (
	MarkerUnknown MarkerKind = iota
	MarkerBullet
	MarkerNumbered
)

// String returns a string representation of the marker kind
func (m MarkerKind) String() string {
	switch m {
	case MarkerBullet:
		return "bullet"
	case MarkerNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// ClassifiedLine is one OCR line plus its detected structural role.
// It is ephemeral: produced by the classifier, consumed by the aggregator,
// never persisted.
type ClassifiedLine struct {
	// Line is the source OCR line (text plus geometry)
	Line model.Line

	// Role is the detected structural role
	Role Role

	// Level is the heading level when Role is RoleHeading
	Level int

	// Marker is the marker kind when Role is RoleListItem
	Marker MarkerKind

	// Body is the line content with any structural prefix removed:
	// the text after a list marker or quote indicator. For code lines it
	// preserves leading indentation; for every other role it is the
	// trimmed line text.
	Body string
}

// IsBlank reports whether the line carried no visible text
func (c ClassifiedLine) IsBlank() bool {
	return strings.TrimSpace(c.Line.Text) == ""
}

// ClassifierConfig holds the pattern rules used for line classification.
// Patterns are configuration rather than hidden package state so alternate
// rule sets (other language conventions) can be swapped in wholesale.
type ClassifierConfig struct {
	// ChapterPatterns match chapter/section numbering prefixes
	// (e.g. "第一章"). Matches become headings at ChapterLevel.
	ChapterPatterns []*regexp.Regexp

	// SectionPatterns match ordinal prefixes ("一、", "1.2") that become
	// headings at SectionLevel.
	SectionPatterns []*regexp.Regexp

	// DetectCapsHeadings enables the all-caps / capitalized-words heading
	// rule for lines without trailing punctuation. Matches become headings
	// at CapsLevel.
	DetectCapsHeadings bool

	// ChapterLevel, SectionLevel and CapsLevel map the heading rules to
	// Markdown heading levels. The defaults (1, 2, 2) are a reasonable
	// convention, not a fixed contract.
	ChapterLevel int
	SectionLevel int
	CapsLevel    int

	// MinHeadingRunes and MaxHeadingRunes bound heading candidate length.
	// Lines outside the bounds fall through to later rules.
	MinHeadingRunes int
	MaxHeadingRunes int

	// TrailingPunctuation disqualifies caps-heading candidates that end in
	// one of these runes.
	TrailingPunctuation string

	// BulletPatterns match bullet list markers at line start
	BulletPatterns []*regexp.Regexp

	// NumberedPatterns match numbered/lettered/circled list markers
	NumberedPatterns []*regexp.Regexp

	// QuotePatterns match quotation indicators. A pattern that consumes
	// only a prefix strips it from the body; a pattern matching the whole
	// line keeps the line verbatim.
	QuotePatterns []*regexp.Regexp

	// EmphasisMarks are runes whose presence marks a line as emphasized
	EmphasisMarks string

	// CodeKeywords matches programming keyword tokens
	CodeKeywords *regexp.Regexp

	// AssignmentPattern and CallPattern match assignment and call shapes
	AssignmentPattern *regexp.Regexp
	CallPattern       *regexp.Regexp

	// CodeIndentColumns is the leading-space threshold beyond which a line
	// counts as code (0 disables the indent rule)
	CodeIndentColumns int

	// TableDelimiter splits a line into cell candidates
	TableDelimiter *regexp.Regexp

	// MinTableSegments is the minimum number of delimiter-split segments
	// for a line to count as a table row candidate
	MinTableSegments int

	// DetectCode and DetectTables gate the code and table rules. Both are
	// disabled in basic mode.
	DetectCode   bool
	DetectTables bool
}

// DefaultClassifierConfig returns the default rule set, tuned for mixed
// Chinese/English documents as produced by the Youdao OCR API.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ChapterPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^第[一二三四五六七八九十百千0-9]+[章节篇部卷]`),
		},
		SectionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^[一二三四五六七八九十]+、`),
			regexp.MustCompile(`^[0-9]+(\.[0-9]+)+(\s|$)`),
		},
		DetectCapsHeadings: true,
		ChapterLevel:       1,
		SectionLevel:       2,
		CapsLevel:          2,
		MinHeadingRunes:    2,
		MaxHeadingRunes:    50,

		TrailingPunctuation: ".,:;!?。，；：！？、",

		BulletPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^[•·▪▫◦‣⁃]\s*`),
			regexp.MustCompile(`^[-*+]\s+`),
		},
		NumberedPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^[0-9]{1,3}[.)、]\s*`),
			regexp.MustCompile(`^[(（][0-9]{1,3}[)）]\s*`),
			regexp.MustCompile(`^[①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳]\s*`),
			regexp.MustCompile(`^[a-zA-Z][.)]\s+`),
		},

		QuotePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^>\s*`),
			regexp.MustCompile(`^["“「『].*["”」』]$`),
		},

		EmphasisMarks: "《》“”‘’【】",

		CodeKeywords: regexp.MustCompile(
			`\b(func|function|var|let|const|if|for|while|def|class|import|from|return|print|public|private|static|void|int|string|package|type)\b`),
		AssignmentPattern: regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\s*[=:]\s*\S`),
		CallPattern:       regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*\s*\(`),
		CodeIndentColumns: 4,

		TableDelimiter:   regexp.MustCompile(`\s{2,}|\t`),
		MinTableSegments: 2,

		DetectCode:   true,
		DetectTables: true,
	}
}

// Classifier assigns structural roles to OCR lines.
// Classification depends only on a line's text: classifying the same text
// twice always yields the same result.
type Classifier struct {
	config ClassifierConfig
	rules  []rule
}

// rule is one (predicate, role constructor) pair. Rules are evaluated in
// order and the first match wins.
type rule struct {
	name  string
	match func(ln lineText) (ClassifiedLine, bool)
}

// lineText carries the views of a line the rules match against
type lineText struct {
	raw     string // original text, untrimmed
	trimmed string // whitespace-trimmed
	folded  string // trimmed text with full-width forms folded to narrow
	indent  int    // leading space columns in raw
}

// NewClassifier creates a classifier with the default rule set
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with a custom rule set
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	c := &Classifier{config: config}
	c.rules = c.buildRules()
	return c
}

// ClassifyLine classifies one OCR line, preserving its geometry
func (c *Classifier) ClassifyLine(line model.Line) ClassifiedLine {
	result := c.Classify(line.Text)
	result.Line = line
	return result
}

// Classify classifies a line of text and returns its role plus metadata.
// The zero geometry on the returned line is filled in by ClassifyLine.
func (c *Classifier) Classify(text string) ClassifiedLine {
	ln := lineText{
		raw:     text,
		trimmed: strings.TrimSpace(text),
		indent:  leadingColumns(text),
	}
	// Full-width digits, letters and punctuation are common in CJK OCR
	// output; fold them so one pattern set covers both forms.
	ln.folded = width.Narrow.String(ln.trimmed)

	if ln.trimmed == "" {
		return ClassifiedLine{Line: model.Line{Text: text}, Role: RolePlainText}
	}

	for _, r := range c.rules {
		if result, ok := r.match(ln); ok {
			result.Line = model.Line{Text: text}
			return result
		}
	}

	return ClassifiedLine{
		Line: model.Line{Text: text},
		Role: RolePlainText,
		Body: ln.trimmed,
	}
}

// buildRules assembles the ordered rule list from the configuration.
// Order matters: a line matching several rules gets the first match.
func (c *Classifier) buildRules() []rule {
	rules := []rule{
		{name: "heading", match: c.matchHeading},
		{name: "list-item", match: c.matchListItem},
		{name: "quote", match: c.matchQuote},
		{name: "emphasis", match: c.matchEmphasis},
	}
	if c.config.DetectCode {
		rules = append(rules, rule{name: "code", match: c.matchCode})
	}
	if c.config.DetectTables {
		rules = append(rules, rule{name: "table-row", match: c.matchTableRow})
	}
	return rules
}

func (c *Classifier) matchHeading(ln lineText) (ClassifiedLine, bool) {
	runes := len([]rune(ln.trimmed))
	if runes < c.config.MinHeadingRunes || runes > c.config.MaxHeadingRunes {
		return ClassifiedLine{}, false
	}

	for _, p := range c.config.ChapterPatterns {
		if p.MatchString(ln.folded) {
			return ClassifiedLine{Role: RoleHeading, Level: c.config.ChapterLevel, Body: ln.trimmed}, true
		}
	}
	for _, p := range c.config.SectionPatterns {
		if p.MatchString(ln.folded) {
			return ClassifiedLine{Role: RoleHeading, Level: c.config.SectionLevel, Body: ln.trimmed}, true
		}
	}

	if c.config.DetectCapsHeadings && !c.hasTrailingPunctuation(ln.trimmed) &&
		!c.looksColumnar(ln) && (isAllCaps(ln.folded) || isTitleCase(ln.folded)) {
		return ClassifiedLine{Role: RoleHeading, Level: c.config.CapsLevel, Body: ln.trimmed}, true
	}

	return ClassifiedLine{}, false
}

func (c *Classifier) matchListItem(ln lineText) (ClassifiedLine, bool) {
	for _, p := range c.config.BulletPatterns {
		if m := p.FindString(ln.folded); m != "" {
			return ClassifiedLine{
				Role:   RoleListItem,
				Marker: MarkerBullet,
				Body:   stripPrefix(ln.trimmed, len([]rune(m))),
			}, true
		}
	}
	for _, p := range c.config.NumberedPatterns {
		if m := p.FindString(ln.folded); m != "" {
			return ClassifiedLine{
				Role:   RoleListItem,
				Marker: MarkerNumbered,
				Body:   stripPrefix(ln.trimmed, len([]rune(m))),
			}, true
		}
	}
	return ClassifiedLine{}, false
}

func (c *Classifier) matchQuote(ln lineText) (ClassifiedLine, bool) {
	for _, p := range c.config.QuotePatterns {
		m := p.FindString(ln.trimmed)
		if m == "" {
			continue
		}
		body := ln.trimmed
		if len(m) < len(ln.trimmed) {
			// Prefix indicator: strip it. Whole-line matches (wrapped
			// quotations) keep the line verbatim.
			body = strings.TrimSpace(ln.trimmed[len(m):])
		}
		return ClassifiedLine{Role: RoleQuote, Body: body}, true
	}
	return ClassifiedLine{}, false
}

func (c *Classifier) matchEmphasis(ln lineText) (ClassifiedLine, bool) {
	if isAllCaps(ln.folded) && !c.looksColumnar(ln) {
		return ClassifiedLine{Role: RoleEmphasis, Body: ln.trimmed}, true
	}
	if strings.ContainsAny(ln.trimmed, c.config.EmphasisMarks) {
		return ClassifiedLine{Role: RoleEmphasis, Body: ln.trimmed}, true
	}
	return ClassifiedLine{}, false
}

func (c *Classifier) matchCode(ln lineText) (ClassifiedLine, bool) {
	body := strings.TrimRight(ln.raw, " \t")

	if c.config.CodeIndentColumns > 0 && ln.indent >= c.config.CodeIndentColumns {
		return ClassifiedLine{Role: RoleCodeLine, Body: body}, true
	}
	if c.config.CodeKeywords != nil && c.config.CodeKeywords.MatchString(ln.folded) {
		return ClassifiedLine{Role: RoleCodeLine, Body: body}, true
	}
	if c.config.AssignmentPattern != nil && c.config.AssignmentPattern.MatchString(ln.folded) {
		return ClassifiedLine{Role: RoleCodeLine, Body: body}, true
	}
	if c.config.CallPattern != nil && c.config.CallPattern.MatchString(ln.folded) {
		return ClassifiedLine{Role: RoleCodeLine, Body: body}, true
	}
	return ClassifiedLine{}, false
}

func (c *Classifier) matchTableRow(ln lineText) (ClassifiedLine, bool) {
	if c.looksColumnar(ln) {
		return ClassifiedLine{Role: RoleTableRow, Body: ln.trimmed}, true
	}
	return ClassifiedLine{}, false
}

// looksColumnar reports whether a line splits into enough delimiter-separated
// segments to be a table row candidate. Heading and emphasis rules defer to
// the table rule for such lines; otherwise a capitalized header row like
// "Name  Age  City" would never reach it.
func (c *Classifier) looksColumnar(ln lineText) bool {
	if !c.config.DetectTables || c.config.TableDelimiter == nil {
		return false
	}
	filled := 0
	for _, s := range c.config.TableDelimiter.Split(ln.folded, -1) {
		if strings.TrimSpace(s) != "" {
			filled++
		}
	}
	return filled >= c.config.MinTableSegments
}

func (c *Classifier) hasTrailingPunctuation(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	return strings.ContainsRune(c.config.TrailingPunctuation, runes[len(runes)-1])
}

// stripPrefix removes n leading runes and surrounding whitespace.
// The marker was matched against the folded text, which width folding keeps
// rune-for-rune aligned with the original.
func stripPrefix(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return strings.TrimSpace(string(runes[n:]))
}

// leadingColumns counts leading whitespace columns, tabs as four
func leadingColumns(s string) int {
	cols := 0
	for _, r := range s {
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += 4
		case '　': // ideographic space
			cols += 2
		default:
			return cols
		}
	}
	return cols
}

// isAllCaps reports whether s contains at least two letters and no
// lowercase letters
func isAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters >= 2
}

// isTitleCase reports whether s consists of space-separated Latin words
// that each start with an uppercase letter
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLetter(r) || !unicode.IsLower(r) {
				return false
			}
		}
	}
	return true
}
