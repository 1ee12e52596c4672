package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/pagemark/model"
)

func modelLine(text string, x, y float64) model.Line {
	return model.Line{Text: text, BBox: model.NewBBox(x, y, 100, 20)}
}

func TestClassifyHeadings(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name  string
		text  string
		level int
	}{
		{"chapter numbering", "第一章 引言", 1},
		{"chapter with digits", "第3章 实现", 1},
		{"section numbering", "第二节 背景", 1},
		{"chinese ordinal", "一、概述", 2},
		{"dotted numbering", "1.2 系统架构", 2},
		{"deep dotted numbering", "2.3.1 细节", 2},
		{"all caps", "INTRODUCTION", 2},
		{"title case words", "Getting Started", 2},
		{"full-width digits", "１.２ 全角编号", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Role != RoleHeading {
				t.Fatalf("Classify(%q).Role = %v, want heading", tt.text, got.Role)
			}
			if got.Level != tt.level {
				t.Errorf("Classify(%q).Level = %d, want %d", tt.text, got.Level, tt.level)
			}
		})
	}
}

func TestClassifyHeadingRejections(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
	}{
		{"trailing punctuation", "IMPORTANT:"},
		{"too short", "A"},
		{"sentence case", "This is an ordinary sentence"},
		{"caps columnar row", "ID  NAME  CITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got.Role == RoleHeading {
				t.Errorf("Classify(%q) should not be a heading", tt.text)
			}
		})
	}
}

func TestClassifyListItems(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name   string
		text   string
		marker MarkerKind
		body   string
	}{
		{"bullet dot", "• 第一点", MarkerBullet, "第一点"},
		{"dash bullet", "- second point", MarkerBullet, "second point"},
		{"numbered dot", "1. 第一项", MarkerNumbered, "第一项"},
		{"numbered paren", "2) another item", MarkerNumbered, "another item"},
		{"chinese enumeration", "3、第三项", MarkerNumbered, "第三项"},
		{"parenthesized number", "(1) 选项", MarkerNumbered, "选项"},
		{"circled number", "① 圈号项", MarkerNumbered, "圈号项"},
		{"lettered", "a) lettered item", MarkerNumbered, "lettered item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Role != RoleListItem {
				t.Fatalf("Classify(%q).Role = %v, want list-item", tt.text, got.Role)
			}
			if got.Marker != tt.marker {
				t.Errorf("Classify(%q).Marker = %v, want %v", tt.text, got.Marker, tt.marker)
			}
			if got.Body != tt.body {
				t.Errorf("Classify(%q).Body = %q, want %q", tt.text, got.Body, tt.body)
			}
		})
	}
}

func TestClassifyQuotes(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("> quoted line")
	if got.Role != RoleQuote {
		t.Fatalf("Role = %v, want quote", got.Role)
	}
	if got.Body != "quoted line" {
		t.Errorf("Body = %q, want %q (prefix stripped)", got.Body, "quoted line")
	}

	got = c.Classify("“完整的引用内容”")
	if got.Role != RoleQuote {
		t.Fatalf("Role = %v, want quote", got.Role)
	}
	if got.Body != "“完整的引用内容”" {
		t.Errorf("Body = %q, wrapped quotations should stay verbatim", got.Body)
	}
}

func TestClassifyEmphasis(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("《红楼梦》是名著。")
	if got.Role != RoleEmphasis {
		t.Errorf("Role = %v, want emphasis for bracket marks", got.Role)
	}

	// All-caps lines too long for a heading still read as emphasis.
	long := "THIS ENTIRE SENTENCE IS SHOUTED AT FULL VOLUME FOR EMPHASIS PURPOSES"
	got = c.Classify(long)
	if got.Role != RoleEmphasis {
		t.Errorf("Role = %v, want emphasis for long all-caps line", got.Role)
	}
}

func TestClassifyCodeLines(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
	}{
		{"keyword", "def hello():"},
		{"assignment", "x = 1"},
		{"call shape", "fmt.Println(42)"},
		{"indented", "        deeply indented body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Role != RoleCodeLine {
				t.Errorf("Classify(%q).Role = %v, want code-line", tt.text, got.Role)
			}
		})
	}

	// Indentation is preserved in the body, trailing whitespace is not.
	got := c.Classify("    indented = true   ")
	if got.Body != "    indented = true" {
		t.Errorf("Body = %q, want indentation kept and trailing space dropped", got.Body)
	}
}

func TestClassifyTableRows(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want Role
	}{
		{"two columns", "姓名  年龄", RoleTableRow},
		{"tab separated", "Alice\t30\tParis", RoleTableRow},
		{"caps header row", "ID  NAME  CITY", RoleTableRow},
		{"title header row", "Name  Age  City", RoleTableRow},
		{"single gap is not columnar", "just ordinary words", RolePlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Role != tt.want {
				t.Errorf("Classify(%q).Role = %v, want %v", tt.text, got.Role, tt.want)
			}
		})
	}
}

func TestClassifyPlainText(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("  这是一段普通的正文内容。  ")
	if got.Role != RolePlainText {
		t.Fatalf("Role = %v, want plain-text", got.Role)
	}
	if got.Body != "这是一段普通的正文内容。" {
		t.Errorf("Body = %q, want trimmed text", got.Body)
	}
}

func TestClassifyBlankLine(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("   ")
	if got.Role != RolePlainText {
		t.Errorf("Role = %v, want plain-text for blank line", got.Role)
	}
	if !got.IsBlank() {
		t.Error("IsBlank() should be true for whitespace-only line")
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()
	inputs := []string{"第一章 引言", "1. 项目", "x = 1", "姓名  年龄", "普通正文"}

	for _, text := range inputs {
		first := c.Classify(text)
		second := c.Classify(text)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify(%q) is not deterministic: %+v vs %+v", text, first, second)
		}
	}
}

func TestClassifyBasicModeGating(t *testing.T) {
	config := DefaultClassifierConfig()
	config.DetectCode = false
	config.DetectTables = false
	c := NewClassifierWithConfig(config)

	if got := c.Classify("def hello():"); got.Role != RolePlainText {
		t.Errorf("code detection disabled, got role %v", got.Role)
	}
	if got := c.Classify("姓名  年龄"); got.Role != RolePlainText {
		t.Errorf("table detection disabled, got role %v", got.Role)
	}

	// Structure rules stay active.
	if got := c.Classify("第一章 引言"); got.Role != RoleHeading {
		t.Errorf("headings should still classify, got role %v", got.Role)
	}
	if got := c.Classify("1. 第一项"); got.Role != RoleListItem {
		t.Errorf("lists should still classify, got role %v", got.Role)
	}
}

func TestClassifyLineKeepsGeometry(t *testing.T) {
	c := NewClassifier()
	line := modelLine("第一章 引言", 10, 20)

	got := c.ClassifyLine(line)
	if got.Role != RoleHeading {
		t.Fatalf("Role = %v, want heading", got.Role)
	}
	if got.Line.BBox != line.BBox {
		t.Errorf("geometry lost: got %+v, want %+v", got.Line.BBox, line.BBox)
	}
}
