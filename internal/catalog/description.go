package catalog

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const descriptionHeading = "Description"

var markdown = goldmark.New()

// ExtractDescription returns the paragraph that follows a "## Description"
// heading in body, trimmed. The paragraph must be separated from the heading by a
// blank line. It ends at the next blank line or heading. Any heading level from 2
// down counts; a level-1 heading does not. Empty when no such section exists.
func ExtractDescription(body string) string {
	source := []byte(body)
	doc := markdown.Parser().Parse(text.NewReader(source))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level < 2 {
			continue
		}
		if strings.TrimSpace(string(headingText(h, source))) != descriptionHeading {
			continue
		}
		p, ok := h.NextSibling().(*ast.Paragraph)
		if !ok || !p.HasBlankPreviousLines() {
			return ""
		}
		return strings.TrimSpace(string(rawLines(p, source)))
	}
	return ""
}

func headingText(h *ast.Heading, source []byte) []byte {
	var buf bytes.Buffer
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// rawLines returns the block's source lines verbatim, inline markup included.
func rawLines(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}
