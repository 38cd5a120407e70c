// Package hocr parses hOCR documents, the HTML-based format OCR engines
// use to publish positioned text, into page sources the layout engine can
// reconstruct. It reads only the geometry the engine needs: pages, words,
// word bounding boxes, and the presence of photo/graphic/separator regions.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/reflow/source"
)

// Word is a positioned word from an ocrx_word element. Coordinates are
// hOCR image coordinates: top-left origin, Y increasing downward.
type Word struct {
	Text string
	X1   float64
	Y1   float64
	X2   float64
	Y2   float64
}

// Page holds one ocr_page element's words and dimensions
type Page struct {
	// Width and Height from the page's bbox
	Width  float64
	Height float64

	// Words in document order
	Words []Word

	// HasImage is true if the page carries a photo or graphic region
	HasImage bool

	// HasSeparator is true if the page carries a separator or line drawing
	HasSeparator bool
}

// Document is a parsed hOCR file
type Document struct {
	Pages []Page
}

// Open parses an hOCR file
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses hOCR from an io.Reader
func OpenReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	doc := &Document{}
	walk(root, doc)
	return doc, nil
}

// PageCount returns the number of parsed pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Runs converts one page's words into rendering-engine-native runs
// (bottom-left origin), ready for the layout normalizer.
func (d *Document) Runs(pageIndex int) []source.RawRun {
	if pageIndex < 0 || pageIndex >= len(d.Pages) {
		return nil
	}

	page := d.Pages[pageIndex]
	runs := make([]source.RawRun, 0, len(page.Words))
	for _, w := range page.Words {
		runs = append(runs, source.RawRun{
			Text:   w.Text,
			X:      w.X1,
			Y:      page.Height - w.Y1, // flip into bottom-left origin
			Width:  w.X2 - w.X1,
			Height: w.Y2 - w.Y1,
		})
	}
	return runs
}

// Source builds an in-memory document source from the parsed pages.
// Photo/graphic regions surface as an image-paint operator and separators
// as path operators, so the visual signal survives the adaptation.
func (d *Document) Source() *source.StaticDocument {
	pages := make([]*source.StaticPage, 0, len(d.Pages))
	for i, p := range d.Pages {
		var ops []string
		if p.HasImage {
			ops = append(ops, "Do")
		}
		if p.HasSeparator {
			ops = append(ops, "re", "S")
		}

		pages = append(pages, &source.StaticPage{
			Runs:      d.Runs(i),
			Size:      source.Viewport{Width: p.Width, Height: p.Height},
			Operators: ops,
		})
	}
	return source.NewStaticDocument(pages...)
}

// walk traverses the DOM collecting pages and their words
func walk(n *html.Node, doc *Document) {
	if n.Type == html.ElementNode {
		switch class(n) {
		case "ocr_page":
			doc.Pages = append(doc.Pages, parsePage(n))
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, doc)
	}
}

// parsePage builds a Page from an ocr_page element and its subtree
func parsePage(n *html.Node) Page {
	page := Page{}

	if x1, y1, x2, y2, ok := bbox(n); ok {
		page.Width = x2 - x1
		page.Height = y2 - y1
	}

	collectWords(n, &page)
	return page
}

// collectWords gathers ocrx_word elements and visual-region markers
func collectWords(n *html.Node, page *Page) {
	if n.Type == html.ElementNode {
		switch class(n) {
		case "ocrx_word", "ocr_word":
			if x1, y1, x2, y2, ok := bbox(n); ok {
				text := strings.TrimSpace(textContent(n))
				if text != "" {
					page.Words = append(page.Words, Word{
						Text: text,
						X1:   x1, Y1: y1, X2: x2, Y2: y2,
					})
				}
			}
			return
		case "ocr_photo", "ocr_graphic", "ocr_image", "ocr_float":
			page.HasImage = true
		case "ocr_separator", "ocr_linedrawing":
			page.HasSeparator = true
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, page)
	}
}

// class returns the element's class attribute
func class(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return attr.Val
		}
	}
	return ""
}

// bbox parses the "bbox x1 y1 x2 y2" property from a node's title attribute
func bbox(n *html.Node) (x1, y1, x2, y2 float64, ok bool) {
	var title string
	for _, attr := range n.Attr {
		if attr.Key == "title" {
			title = attr.Val
			break
		}
	}
	if title == "" {
		return 0, 0, 0, 0, false
	}

	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}

		coords := make([]float64, 4)
		valid := true
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				valid = false
				break
			}
			coords[i] = v
		}
		if valid {
			return coords[0], coords[1], coords[2], coords[3], true
		}
	}

	return 0, 0, 0, 0, false
}

// textContent returns the concatenated text of a node's subtree
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
