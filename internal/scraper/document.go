package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node gives read access to a located element
type Node interface {
	// Text returns the element's text content with surrounding whitespace trimmed
	Text() string
}

// DocumentView is the lookup capability the locator needs from a parsed page
type DocumentView interface {
	// FindByIDAndTag returns the first tag element whose id equals id
	FindByIDAndTag(tag, id string) (Node, bool)

	// FindByClassAndTag returns the first tag element carrying class
	FindByClassAndTag(tag, class string) (Node, bool)
}

// HTMLDocument implements DocumentView over a goquery document
type HTMLDocument struct {
	doc *goquery.Document
}

// NewHTMLDocument parses an HTML page
func NewHTMLDocument(reader io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("HTML parsing error: %w", err)
	}
	return &HTMLDocument{doc: doc}, nil
}

// FindByIDAndTag implements DocumentView
func (d *HTMLDocument) FindByIDAndTag(tag, id string) (Node, bool) {
	return first(d.doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr("id")
		return ok && v == id
	}))
}

// FindByClassAndTag implements DocumentView
func (d *HTMLDocument) FindByClassAndTag(tag, class string) (Node, bool) {
	return first(d.doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	}))
}

func first(sel *goquery.Selection) (Node, bool) {
	if sel.Length() == 0 {
		return nil, false
	}
	return selectionNode{sel: sel.First()}, true
}

type selectionNode struct {
	sel *goquery.Selection
}

func (n selectionNode) Text() string {
	return strings.TrimSpace(n.sel.Text())
}
