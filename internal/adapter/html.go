package adapter

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	m "github.com/mouse-blink/listedit/internal/model"
)

// TypeHeading and TypeCodeBlock are block types produced only by HTML import.
const (
	TypeHeading   m.NodeType = "heading"
	TypeCodeBlock m.NodeType = "code_block"
)

const dataTypeAttr = "data-type"

var tagTypes = map[string]m.NodeType{
	"p":          m.TypeParagraph,
	"ul":         m.TypeBulletList,
	"ol":         m.TypeNumberList,
	"li":         m.TypeListItem,
	"blockquote": m.TypeBlockQuote,
	"pre":        TypeCodeBlock,
	"h1":         TypeHeading,
	"h2":         TypeHeading,
	"h3":         TypeHeading,
	"h4":         TypeHeading,
	"h5":         TypeHeading,
	"h6":         TypeHeading,
}

var typeTags = map[m.NodeType]string{
	m.TypeParagraph:  "p",
	m.TypeBulletList: "ul",
	m.TypeNumberList: "ol",
	m.TypeListItem:   "li",
	m.TypeBlockQuote: "blockquote",
	TypeCodeBlock:    "pre",
}

// textBlocks hold their content as a single text leaf.
var textBlocks = map[m.NodeType]bool{
	m.TypeParagraph: true,
	TypeHeading:     true,
	TypeCodeBlock:   true,
}

// HTMLImporter converts sanitized HTML fragments to documents and back.
type HTMLImporter struct {
	policy *bluemonday.Policy
}

// NewHTMLImporter builds an importer with a user-content sanitization policy
// that keeps data attributes, which carry column markers and node data.
func NewHTMLImporter() *HTMLImporter {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataAttributes()
	policy.AllowAttrs("start").OnElements("ol")

	return &HTMLImporter{policy: policy}
}

// Import sanitizes and parses HTML into a document.
func (h *HTMLImporter) Import(r io.Reader) (*m.Document, error) {
	clean := h.policy.SanitizeReader(r)

	root, err := html.Parse(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	body := findElementByTagName(root, "body")
	if body == nil {
		return m.NewDocument(), nil
	}

	return m.NewDocument(convertChildren(body)...), nil
}

// convertChildren converts the children of el. Loose inline content between
// blocks is gathered into paragraphs.
func convertChildren(el *html.Node) []*m.Node {
	var (
		out     []*m.Node
		pending strings.Builder
	)

	flush := func() {
		text := collapseSpace(pending.String())
		pending.Reset()

		if text != "" {
			out = append(out, m.Paragraph(text))
		}
	}

	for child := el.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode:
			pending.WriteString(child.Data)
		case child.Type != html.ElementNode:
			continue
		case isBlockElement(child):
			flush()

			out = append(out, convertBlock(child)...)
		default:
			pending.WriteString(getText(child))
		}
	}

	flush()

	return out
}

func isBlockElement(el *html.Node) bool {
	if _, ok := tagTypes[el.Data]; ok {
		return true
	}

	return el.Data == "div"
}

// convertBlock converts one block element. A div without a data-type is
// transparent and yields its converted children.
func convertBlock(el *html.Node) []*m.Node {
	nodeType, ok := tagTypes[el.Data]
	if !ok {
		nodeType = m.NodeType(getAttrValue(dataTypeAttr, el.Attr))
	}

	if nodeType == "" {
		return convertChildren(el)
	}

	n := &m.Node{Type: nodeType, Data: dataAttrs(el)}

	if nodeType == TypeHeading {
		level, _ := strconv.Atoi(strings.TrimPrefix(el.Data, "h"))
		if n.Data == nil {
			n.Data = map[string]any{}
		}

		n.Data["level"] = level
	}

	if textBlocks[nodeType] {
		text := getText(el)
		if nodeType != TypeCodeBlock {
			text = collapseSpace(text)
		}

		n.Children = []*m.Node{m.Leaf(text)}

		return []*m.Node{n}
	}

	n.Children = convertChildren(el)

	switch {
	case len(n.Children) > 0:
	case nodeType == m.TypeListItem:
		n.Children = []*m.Node{m.Paragraph("")}
	case nodeType == m.TypeBulletList || nodeType == m.TypeNumberList:
		return nil
	default:
		n.Children = []*m.Node{m.Leaf("")}
	}

	return []*m.Node{n}
}

// dataAttrs collects data-* attributes other than the type marker. The ol
// start attribute is kept as well.
func dataAttrs(el *html.Node) map[string]any {
	var data map[string]any

	for _, attr := range el.Attr {
		key, ok := strings.CutPrefix(attr.Key, "data-")
		if attr.Key == "start" {
			key, ok = attr.Key, true
		}

		if !ok || attr.Key == dataTypeAttr {
			continue
		}

		if data == nil {
			data = map[string]any{}
		}

		data[key] = attr.Val
	}

	return data
}

func getText(root *html.Node) string {
	var sb strings.Builder

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			sb.WriteString("\n")
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}

	visit(root)

	return sb.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func findElementByTagName(root *html.Node, tagName string) *html.Node {
	if root.Type == html.ElementNode && root.Data == tagName {
		return root
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if el := findElementByTagName(c, tagName); el != nil {
			return el
		}
	}

	return nil
}

func getAttrValue(key string, attrs []html.Attribute) string {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Val
		}
	}

	return ""
}

// Export renders a document as an HTML fragment, one top-level block per line.
func (h *HTMLImporter) Export(w io.Writer, doc *m.Document) error {
	for _, n := range doc.Children {
		if err := html.Render(w, toHTML(n)); err != nil {
			return fmt.Errorf("failed to render html: %w", err)
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

func toHTML(n *m.Node) *html.Node {
	if n.IsLeaf() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	el := &html.Node{Type: html.ElementNode}

	tag, ok := typeTags[n.Type]

	switch {
	case ok:
		el.Data = tag
	case n.Type == TypeHeading:
		el.Data = "h" + strconv.Itoa(headingLevel(n))
	default:
		el.Data = "div"
		el.Attr = append(el.Attr, html.Attribute{Key: dataTypeAttr, Val: string(n.Type)})
	}

	keys := make([]string, 0, len(n.Data))
	for key := range n.Data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		switch {
		case n.Type == TypeHeading && key == "level":
			continue
		case key == "start" && n.Type == m.TypeNumberList:
			el.Attr = append(el.Attr, html.Attribute{Key: key, Val: fmt.Sprint(n.Data[key])})
		default:
			el.Attr = append(el.Attr, html.Attribute{Key: "data-" + key, Val: fmt.Sprint(n.Data[key])})
		}
	}

	for _, child := range n.Children {
		el.AppendChild(toHTML(child))
	}

	return el
}

func headingLevel(n *m.Node) int {
	switch v := n.Data["level"].(type) {
	case int:
		return min(max(v, 1), 6)
	case string:
		if level, err := strconv.Atoi(v); err == nil {
			return min(max(level, 1), 6)
		}
	}

	return 1
}
