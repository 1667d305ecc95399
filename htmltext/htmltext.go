// Package htmltext flattens HTML documents, typically EPUB chapter files
// or saved web pages, into plain text lines suitable for the reflow
// engine.
//
// Block-level elements become lines; inline markup is dissolved. No
// archive handling or document rewriting happens here: the input is an
// already-extracted HTML fragment or file.
package htmltext

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Source holds the flattened content of one HTML document. It implements
// the extract.PageSource contract with the whole document as one page.
type Source struct {
	title string
	lines []string
}

// Open parses an HTML file.
func Open(filename string) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from r.
func OpenReader(r io.Reader) (*Source, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	s := &Source{}
	s.extractTitle(doc)

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}

	var sb strings.Builder
	flatten(body, &sb)
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			s.lines = append(s.lines, line)
		}
	}

	return s, nil
}

// Title returns the document title, if any.
func (s *Source) Title() string {
	if s == nil {
		return ""
	}
	return s.title
}

// Lines returns the flattened block-level text lines.
func (s *Source) Lines() []string {
	if s == nil {
		return nil
	}
	return s.lines
}

// Text returns the flattened document joined with newlines.
func (s *Source) Text() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.lines, "\n")
}

// PageCount returns 1: an HTML document is a single page.
func (s *Source) PageCount() int {
	if s == nil || len(s.lines) == 0 {
		return 0
	}
	return 1
}

// PageText returns the whole document for index 0.
func (s *Source) PageText(index int) (string, error) {
	if index != 0 || s.PageCount() == 0 {
		return "", fmt.Errorf("page %d out of range", index)
	}
	return s.Text(), nil
}

// Close releases resources. Source keeps no handles open.
func (s *Source) Close() error {
	return nil
}

func (s *Source) extractTitle(doc *html.Node) {
	head := findElement(doc, "head")
	if head == nil {
		return
	}
	if t := findElement(head, "title"); t != nil {
		s.title = strings.TrimSpace(textContent(t))
	}
}

// skippedElements never contribute text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"template": true,
	"iframe":   true,
}

// blockElements force a line break before and after their content.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
	"table": true, "tr": true, "hr": true, "figcaption": true,
}

// flatten walks the DOM appending text; block boundaries become newlines.
func flatten(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
		if blockElements[n.Data] {
			sb.WriteString("\n")
			defer sb.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(c, sb)
	}
}

// findElement finds the first element named name in the tree rooted at n.
func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// textContent collects all text under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
