// ABOUTME: HTML utilities for turning feed HTML into plain text
// ABOUTME: Used for excerpts, word counts and prompt preparation

package html

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements end a run of text; their boundaries read as whitespace
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Tr: true, atom.Td: true, atom.Th: true,
	atom.Section: true, atom.Article: true, atom.Figure: true, atom.Figcaption: true, atom.Hr: true,
}

var tagPattern = regexp.MustCompile(`<[^>]*>?`)

// PlainText renders an HTML fragment as whitespace-collapsed plain text.
// Entities are decoded, script and style bodies are dropped.
func PlainText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return StripTags(fragment)
	}
	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	for _, n := range doc.Selection.Nodes {
		writeText(&b, n)
	}
	return collapseSpace(b.String())
}

func writeText(b *strings.Builder, n *xhtml.Node) {
	switch n.Type {
	case xhtml.TextNode:
		b.WriteString(n.Data)
		return
	case xhtml.ElementNode:
		if blockElements[n.DataAtom] {
			b.WriteByte(' ')
			defer b.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

// StripTags removes anything that looks like a tag without parsing,
// then decodes entities. Fallback for input the parser rejects.
func StripTags(s string) string {
	return collapseSpace(xhtml.UnescapeString(tagPattern.ReplaceAllString(s, "")))
}

// StripCDATA removes CDATA wrapper markers the XML decoder left behind
func StripCDATA(s string) string {
	s = strings.ReplaceAll(s, "<![CDATA[", "")
	s = strings.ReplaceAll(s, "]]>", "")
	return strings.TrimSpace(s)
}

// WordCount counts whitespace separated tokens of the fragment's plain text
func WordCount(fragment string) int {
	return len(strings.Fields(PlainText(fragment)))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
