package plaintext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownConverter flattens a markdown document to plain text using
// goldmark: headings and paragraphs become blank-line-separated blocks,
// list items become hyphen-prefixed lines.
type markdownConverter struct{}

func (markdownConverter) Name() string { return "markdown" }

func (markdownConverter) Convert(source string) (string, error) {
	md := goldmark.New()
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	var sb strings.Builder
	walkMarkdown(doc, src, &sb)
	return strings.TrimRight(sb.String(), "\n"), nil
}

func walkMarkdown(node ast.Node, source []byte, sb *strings.Builder) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			writeBlock(sb, string(n.Text(source)))
		case *ast.Paragraph:
			writeBlock(sb, string(n.Text(source)))
		case *ast.List:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			walkMarkdown(n, source, sb)
		case *ast.ListItem:
			sb.WriteString("- ")
			sb.WriteString(listItemText(n, source))
			sb.WriteByte('\n')
		case *ast.FencedCodeBlock:
			writeBlock(sb, segmentText(n, source))
		case *ast.CodeBlock:
			writeBlock(sb, segmentText(n, source))
		}
	}
}

// listItemText extracts the text of a list item's first block. List items
// usually wrap a paragraph or a text block.
func listItemText(n *ast.ListItem, source []byte) string {
	child := n.FirstChild()
	if child == nil {
		return ""
	}
	switch c := child.(type) {
	case *ast.Paragraph:
		return string(c.Text(source))
	case *ast.TextBlock:
		return string(c.Text(source))
	default:
		return string(c.Text(source))
	}
}

func segmentText(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}
