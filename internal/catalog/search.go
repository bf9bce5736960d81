package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns the technologies matching every whitespace-separated token of
// query (AND semantics). Tokens match case-insensitively against name, tags,
// description and quadrant/ring labels. Results are in SortByName order.
func Search(techs []Technology, query string, limit int) []Technology {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []Technology{}
	}

	fold := cases.Fold()
	var out []Technology
	for _, t := range techs {
		fields := append([]string{t.Name, t.Description, t.Quadrant.Label(), t.Ring.Label()}, t.Tags...)
		blob := fold.String(strings.Join(fields, "\n"))
		ok := true
		for _, tok := range tokens {
			if !strings.Contains(blob, tok) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, t)
		}
	}

	SortByName(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []Technology{}
	}
	return out
}

func tokenize(q string) []string {
	fold := cases.Fold()
	parts := strings.Fields(q)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, fold.String(p))
	}
	return out
}
