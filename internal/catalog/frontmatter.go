package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoFrontmatter indicates the document does not open with a "---" block.
	ErrNoFrontmatter = errors.New("no frontmatter")
	// ErrMalformedFrontmatter indicates the header block is not a YAML mapping.
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")
)

const frontmatterDelim = "---"

// Frontmatter is the key/value header of a document. Top-level values are whatever
// yaml.v3 decodes: strings, numbers or booleans. Sequences are []any whose scalar
// entries are the literal header text.
type Frontmatter map[string]any

// ParseFrontmatter splits content into its header mapping and body.
//
// The header must start on the very first line with a line consisting solely of
// "---" and end at the next such line. When the block is absent the mapping is
// empty, the body is the whole content and the error is ErrNoFrontmatter. When
// the block does not decode to a mapping the mapping is empty, the body is the
// text after the block and the error wraps ErrMalformedFrontmatter. Callers treat
// both errors as warnings.
func ParseFrontmatter(content string) (Frontmatter, string, error) {
	s := strings.TrimPrefix(content, "\ufeff")

	first, rest, ok := cutLine(s)
	if !ok || !isDelim(first) {
		return Frontmatter{}, content, ErrNoFrontmatter
	}

	var block []string
	for {
		line, next, more := cutLine(rest)
		if isDelim(line) {
			rest = next
			break
		}
		if !more {
			return Frontmatter{}, content, ErrNoFrontmatter
		}
		block = append(block, line)
		rest = next
	}

	text := strings.TrimSpace(strings.Join(block, "\n"))
	if text == "" {
		return Frontmatter{}, rest, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return Frontmatter{}, rest, fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return Frontmatter{}, rest, fmt.Errorf("%w: header is not a key/value mapping", ErrMalformedFrontmatter)
	}

	raw := map[string]any{}
	if err := node.Decode(&raw); err != nil {
		return Frontmatter{}, rest, fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}

	out := make(Frontmatter, len(raw))
	for k, v := range raw {
		out[normKey(k)] = v
	}
	m := node.Content[0]
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}
		items, err := sequenceItems(m.Content[i+1])
		if err != nil {
			return Frontmatter{}, rest, fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
		}
		out[normKey(m.Content[i].Value)] = items
	}
	return out, rest, nil
}

func normKey(k string) string { return strings.ToLower(strings.TrimSpace(k)) }

// sequenceItems decodes seq keeping every scalar entry as written in the
// header, so a tag such as 1.0 is not reformatted as 1.
func sequenceItems(seq *yaml.Node) ([]any, error) {
	items := make([]any, 0, len(seq.Content))
	for _, n := range seq.Content {
		if n.Kind == yaml.AliasNode && n.Alias != nil {
			n = n.Alias
		}
		switch {
		case n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null":
			items = append(items, nil)
		case n.Kind == yaml.ScalarNode:
			items = append(items, n.Value)
		default:
			var v any
			if err := n.Decode(&v); err != nil {
				return nil, err
			}
			items = append(items, v)
		}
	}
	return items, nil
}

// Text returns the first non-empty scalar value among keys, stringified.
func (f Frontmatter) Text(keys ...string) string {
	for _, k := range keys {
		v, ok := f[k]
		if !ok || v == nil {
			continue
		}
		switch tv := v.(type) {
		case string:
			if s := strings.TrimSpace(tv); s != "" {
				return s
			}
		case []any, map[string]any:
			continue
		default:
			if s := strings.TrimSpace(fmt.Sprint(tv)); s != "" {
				return s
			}
		}
	}
	return ""
}

// List returns key as a list of strings exactly as written in the header. A
// single scalar becomes a one-element list. Null and nested entries are dropped.
func (f Frontmatter) List(key string) []string {
	v, ok := f[key]
	if !ok || v == nil {
		return []string{}
	}
	var items []any
	switch tv := v.(type) {
	case []any:
		items = tv
	case []string:
		for _, s := range tv {
			items = append(items, s)
		}
	case map[string]any:
		return []string{}
	default:
		items = []any{tv}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		switch tv := it.(type) {
		case nil, map[string]any, []any:
			continue
		case string:
			out = append(out, tv)
		default:
			out = append(out, fmt.Sprint(tv))
		}
	}
	return out
}

func isDelim(line string) bool {
	return strings.TrimRight(line, " \t\r") == frontmatterDelim
}

// cutLine returns the first line of s (without its newline) and the remainder.
// more is false when s has no newline.
func cutLine(s string) (line, rest string, more bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
