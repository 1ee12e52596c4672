package pagemark

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/pagemark/model"
)

func hRegion(y float64, texts ...string) model.Region {
	r := model.Region{Dir: model.Horizontal, BBox: model.NewBBox(0, y, 600, 30*float64(len(texts)))}
	for i, t := range texts {
		r.Lines = append(r.Lines, model.Line{
			Text: t,
			BBox: model.NewBBox(0, y+30*float64(i), 600, 30),
		})
	}
	return r
}

func TestChapterHeading(t *testing.T) {
	md, err := FromRegions([]model.Region{hRegion(0, "第一章 引言")}).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if md != "# 第一章 引言" {
		t.Errorf("got %q, want %q", md, "# 第一章 引言")
	}
}

func TestOrderedListRenumbered(t *testing.T) {
	md, err := FromRegions([]model.Region{hRegion(0, "1. 第一项", "2. 第二项")}).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if md != "1. 第一项\n2. 第二项" {
		t.Errorf("got %q", md)
	}
}

func TestTableWithSeparator(t *testing.T) {
	md, err := FromRegions([]model.Region{hRegion(0,
		"列1  列2  列3",
		"数据1  数据2  数据3",
	)}).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	want := "| 列1 | 列2 | 列3 |\n| --- | --- | --- |\n| 数据1 | 数据2 | 数据3 |"
	if md != want {
		t.Errorf("got %q, want %q", md, want)
	}
}

func TestCodeLinesFormOneFencedBlock(t *testing.T) {
	md, err := FromRegions([]model.Region{hRegion(0,
		"def hello():",
		"    print(\"hi\")",
	)}).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	want := "```python\ndef hello():\n    print(\"hi\")\n```"
	if md != want {
		t.Errorf("got %q, want %q", md, want)
	}
}

func TestConsecutivePlainLinesMerge(t *testing.T) {
	md, err := FromRegions([]model.Region{hRegion(0, "前半句内容", "后半句内容")}).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if md != "前半句内容 后半句内容" {
		t.Errorf("got %q, want single space-joined paragraph", md)
	}
}

func TestEmptyRegionsContributeNothing(t *testing.T) {
	regions := []model.Region{
		{Dir: model.Horizontal, BBox: model.NewBBox(0, 0, 600, 30)},
		hRegion(50, "正文内容在这里"),
		{Dir: model.Horizontal, BBox: model.NewBBox(0, 100, 600, 30)},
	}

	md, err := FromRegions(regions).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if md != "正文内容在这里" {
		t.Errorf("got %q", md)
	}
}

func TestEmptyInputYieldsEmptyOutput(t *testing.T) {
	md, err := FromRegions(nil).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if md != "" {
		t.Errorf("got %q, want empty string", md)
	}
}

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"errorCode": "0",
		"Result": {
			"regions": [{
				"lang": "zh-CHS",
				"dir": "h",
				"boundingBox": "0,0,600,60",
				"lines": [
					{"text": "第一章 引言", "boundingBox": "0,0,600,30"},
					{"text": "这是正文内容", "boundingBox": "0,30,600,30"}
				]
			}]
		}
	}`)

	md, err := FromJSON(data).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	want := "# 第一章 引言\n\n这是正文内容"
	if md != want {
		t.Errorf("got %q, want %q", md, want)
	}
}

func TestFromJSONMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"missing result", `{"errorCode": "0"}`},
		{"wrong shape", `{"Result": "just a string"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tt.data)).Markdown()
			if !errors.Is(err, model.ErrMalformedInput) {
				t.Errorf("expected ErrMalformedInput, got: %v", err)
			}
		})
	}
}

func TestFromResultNil(t *testing.T) {
	_, err := FromResult(nil).Markdown()
	if !errors.Is(err, model.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got: %v", err)
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Must(FromJSON([]byte("bad")).Markdown())
}

func TestMustReturnsValue(t *testing.T) {
	md := Must(FromRegions([]model.Region{hRegion(0, "第一章 标题")}).Markdown())
	if !strings.HasPrefix(md, "# ") {
		t.Errorf("got %q", md)
	}
}
