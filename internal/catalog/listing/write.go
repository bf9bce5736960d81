package listing

import (
	"fmt"
	"path/filepath"

	"github.com/kamusis/techradar/internal/catalog"
	"github.com/kamusis/techradar/internal/publish"
)

// DefaultIndexName is the page written into every quadrant directory.
const DefaultIndexName = "index.md"

// PageResult reports one written index page.
type PageResult struct {
	Quadrant catalog.Quadrant
	Path     string
	Count    int
}

// PageQuadrants returns the quadrants that get an index page, in canonical
// order: every quadrant directory found by the scan plus every quadrant a
// header override moved a technology into.
func PageQuadrants(res *catalog.Result) []catalog.Quadrant {
	want := make(map[catalog.Quadrant]bool, len(catalog.Quadrants))
	for _, q := range res.Quadrants {
		want[q] = true
	}
	for _, t := range res.Technologies {
		want[t.Quadrant] = true
	}
	var out []catalog.Quadrant
	for _, q := range catalog.Quadrants {
		if want[q] {
			out = append(out, q)
		}
	}
	return out
}

// WritePages writes <root>/<quadrant>/<indexName> for every quadrant returned
// by PageQuadrants. A page whose directory is missing creates it.
func WritePages(root, indexName string, res *catalog.Result) ([]PageResult, error) {
	if indexName == "" {
		indexName = DefaultIndexName
	}
	var out []PageResult
	for _, q := range PageQuadrants(res) {
		techs := res.ByQuadrant(q)
		p := filepath.Join(root, q.Label(), indexName)
		if err := publish.WriteFile(p, []byte(Compose(q, techs))); err != nil {
			return out, fmt.Errorf("cannot write index %s: %w", p, err)
		}
		out = append(out, PageResult{Quadrant: q, Path: p, Count: len(techs)})
	}
	return out, nil
}
