package plaintext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlConverter flattens an HTML fragment to plain text: headings and
// paragraphs become blank-line-separated blocks, list items become
// hyphen-prefixed lines, script and style subtrees are dropped.
type htmlConverter struct{}

func (htmlConverter) Name() string { return "html" }

func (htmlConverter) Convert(source string) (string, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	walkHTML(doc, &sb)
	return strings.TrimRight(sb.String(), "\n"), nil
}

func walkHTML(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style:
			return
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.P:
			writeBlock(sb, extractText(n))
			return
		case atom.Li:
			sb.WriteString("- ")
			sb.WriteString(extractText(n))
			sb.WriteByte('\n')
			return
		case atom.Ul, atom.Ol:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, sb)
	}
}

// extractText collects the text below n with whitespace runs collapsed to
// single spaces.
func extractText(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
