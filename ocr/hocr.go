package ocr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pagemark/model"
)

// ParseHOCR converts raw hOCR output (Tesseract's HTML-based recognition
// format) into regions with per-line geometry. Each ocr_carea element
// becomes one Region, each ocr_line one Line, and each ocrx_word one Word.
//
// Tesseract emits horizontal text only, so all regions are marked with
// horizontal direction.
func ParseHOCR(data []byte) ([]model.Region, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	var regions []model.Region

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_carea") {
			if region, ok := parseCArea(n); ok {
				regions = append(regions, region)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return regions, nil
}

// parseCArea builds a Region from an ocr_carea element. Areas with no
// recognized lines are dropped.
func parseCArea(n *html.Node) (model.Region, bool) {
	region := model.Region{
		Dir:  model.Horizontal,
		BBox: parseTitleBBox(attr(n, "title")),
	}

	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode {
			if region.Lang == "" {
				if lang := attr(c, "lang"); lang != "" {
					region.Lang = lang
				}
			}
			if hasClass(c, "ocr_line") || hasClass(c, "ocr_header") || hasClass(c, "ocr_caption") {
				if line, ok := parseLine(c); ok {
					region.Lines = append(region.Lines, line)
				}
				return
			}
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	if len(region.Lines) == 0 {
		return model.Region{}, false
	}
	return region, true
}

// parseLine builds a Line from an ocr_line element. The line text is the
// space-joined word texts; lines with no words fall back to the element's
// text content. Empty lines are dropped.
func parseLine(n *html.Node) (model.Line, bool) {
	line := model.Line{BBox: parseTitleBBox(attr(n, "title"))}

	var words []string
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && hasClass(c, "ocrx_word") {
			text := strings.TrimSpace(nodeText(c))
			if text != "" {
				words = append(words, text)
				line.Words = append(line.Words, model.Word{
					Text: text,
					BBox: parseTitleBBox(attr(c, "title")),
				})
			}
			return
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	if len(words) > 0 {
		line.Text = strings.Join(words, " ")
	} else {
		line.Text = strings.TrimSpace(nodeText(n))
	}

	if line.Text == "" {
		return model.Line{}, false
	}
	return line, true
}

// parseTitleBBox extracts a bounding box from an hOCR title attribute.
// Example input: "bbox 100 200 300 400; x_wconf 95". hOCR boxes are
// corner pairs; the result is converted to x/y/width/height. Missing or
// malformed boxes yield a zero box.
func parseTitleBBox(title string) model.BBox {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 5 || fields[0] != "bbox" {
			continue
		}
		coords := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return model.BBox{}
			}
			coords[i] = v
		}
		return model.NewBBox(coords[0], coords[1], coords[2]-coords[0], coords[3]-coords[1])
	}
	return model.BBox{}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
