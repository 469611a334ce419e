// Package page renders the attribution page of a resolved webicon.
package page

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/agentstation/webicons/pkg/metadata"
)

// FaviconHref is the favicon every page links to.
const FaviconHref = "/favicon.ico"

// ContentType is the media type of a rendered Document.
const ContentType = "text/html; charset=utf-8"

// Document is a rendered HTML page.
type Document struct {
	root *html.Node
}

// Render builds the page for md. The body always holds, in order: the vendor
// name, a link to the vendor url, the attribution and the license link.
// The attribution is an HTML fragment; every other field is text.
func Render(md metadata.VendorMetadata, title string) *Document {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	root.AppendChild(head(title))
	root.AppendChild(body(md))
	doc.AppendChild(root)

	return &Document{root: doc}
}

func head(title string) *html.Node {
	h := element(atom.Head)

	t := element(atom.Title)
	t.AppendChild(text(title))
	h.AppendChild(t)

	h.AppendChild(element(atom.Link,
		html.Attribute{Key: "rel", Val: "icon"},
		html.Attribute{Key: "type", Val: "image/x-icon"},
		html.Attribute{Key: "href", Val: FaviconHref},
		html.Attribute{Key: "sizes", Val: "any"},
	))
	return h
}

func body(md metadata.VendorMetadata) *html.Node {
	b := element(atom.Body)

	h1 := element(atom.H1)
	h1.AppendChild(text(md.Name))
	b.AppendChild(h1)

	b.AppendChild(paragraph(link(md.URL, md.URL)))

	attribution := element(atom.P)
	for _, n := range fragment(md.Attribution, attribution) {
		attribution.AppendChild(n)
	}
	b.AppendChild(attribution)

	b.AppendChild(paragraph(text("License: "), link(md.LicenseURL, md.LicenseName)))
	return b
}

// fragment parses s as children of parent, falling back to plain text.
func fragment(s string, parent *html.Node) []*html.Node {
	nodes, err := html.ParseFragment(strings.NewReader(s), parent)
	if err != nil {
		return []*html.Node{text(s)}
	}
	return nodes
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func link(href, label string) *html.Node {
	a := element(atom.A, html.Attribute{Key: "href", Val: href})
	a.AppendChild(text(label))
	return a
}

func paragraph(children ...*html.Node) *html.Node {
	p := element(atom.P)
	for _, c := range children {
		p.AppendChild(c)
	}
	return p
}

// Root returns the document node of the page.
func (d *Document) Root() *html.Node {
	return d.root
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := html.Render(cw, d.root)
	return cw.n, err
}

// String returns the serialized page.
func (d *Document) String() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, d.root)
	return buf.String()
}

// Bytes returns the serialized page.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_ = html.Render(&buf, d.root)
	return buf.Bytes()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
