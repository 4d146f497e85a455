package text

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Plain renders markdown as plain text suitable for reading aloud. Code
// blocks, raw HTML, autolinks and link targets are dropped.
func Plain(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n.Kind() {
		case ast.KindFencedCodeBlock,
			ast.KindCodeBlock,
			ast.KindHTMLBlock,
			ast.KindRawHTML,
			ast.KindAutoLink,
			ast.KindThematicBreak:
			return ast.WalkSkipChildren, nil
		}

		if !entering {
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				b.WriteString("\n")
			}

			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))

			if n.HardLineBreak() {
				b.WriteString("\n")
			} else if n.SoftLineBreak() {
				b.WriteString(" ")
			}

		case *ast.String:
			b.Write(n.Value)
		}

		return ast.WalkContinue, nil
	})

	return Normalize(b.String())
}

// Speakable returns input unchanged unless it looks like markdown, in which
// case the plain text rendering is returned.
func Speakable(input string) string {
	if !IsMarkdown(input) {
		return input
	}

	return Plain(input)
}
