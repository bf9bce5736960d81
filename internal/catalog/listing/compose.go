// Package listing renders the per-quadrant index pages of the docs site.
package listing

import (
	"path"
	"strings"
	"text/template"

	"github.com/kamusis/techradar/internal/catalog"
)

// EmptyRing is written under a ring heading that lists no technologies.
const EmptyRing = "*No technologies in this ring yet.*"

var quadrantDescriptions = map[catalog.Quadrant]string{
	catalog.QuadrantTechniques:          "Techniques are practices, methodologies, and approaches to software development that we use or are evaluating.",
	catalog.QuadrantTools:               "Software development tools, testing frameworks, and utilities that help us build better software.",
	catalog.QuadrantPlatforms:           "Infrastructure, cloud services, and runtime environments that power our applications.",
	catalog.QuadrantLanguagesFrameworks: "Programming languages and application frameworks we use to build our software.",
}

var ringDescriptions = map[catalog.Ring]string{
	catalog.RingAdopt:  "Technologies in this ring are proven and recommended for wide use across our teams.",
	catalog.RingTrial:  "Technologies we're actively using but need more production experience with.",
	catalog.RingAssess: "Technologies worth exploring to understand their potential impact.",
	catalog.RingHold:   "Technologies we recommend proceeding with caution or avoiding.",
}

// QuadrantDescription returns the fixed introduction sentence of q's page.
func QuadrantDescription(q catalog.Quadrant) string { return quadrantDescriptions[q] }

// RingDescription returns the fixed blurb shown under r's heading.
func RingDescription(r catalog.Ring) string { return ringDescriptions[r] }

var pageTmpl = template.Must(template.New("index").Parse(`# {{.Title}}

{{.Description}}

{{range .Sections}}## {{.Title}}

{{.Description}}

{{if .Items}}{{range .Items}}- [{{.Title}}]({{.Link}})
{{end}}{{else}}{{$.Empty}}
{{end}}
{{end}}`))

type page struct {
	Title       string
	Description string
	Sections    []section
	Empty       string
}

type section struct {
	Title       string
	Description string
	Items       []item
}

type item struct {
	Title string
	Link  string
}

// Compose renders the index page for quadrant q from techs. Technologies of other
// quadrants are ignored. Within each ring entries are sorted with
// catalog.SortByName; rings appear in canonical order.
func Compose(q catalog.Quadrant, techs []catalog.Technology) string {
	byRing := make(map[catalog.Ring][]catalog.Technology, len(catalog.Rings))
	for _, t := range techs {
		if t.Quadrant != q {
			continue
		}
		byRing[t.Ring] = append(byRing[t.Ring], t)
	}

	p := page{
		Title:       q.DisplayName(),
		Description: QuadrantDescription(q),
		Empty:       EmptyRing,
	}
	for _, r := range catalog.Rings {
		group := append([]catalog.Technology(nil), byRing[r]...)
		catalog.SortByName(group)

		s := section{Title: r.DisplayName(), Description: RingDescription(r)}
		for _, t := range group {
			s.Items = append(s.Items, item{Title: t.Name, Link: Link(q, t)})
		}
		p.Sections = append(p.Sections, s)
	}

	var b strings.Builder
	if err := pageTmpl.Execute(&b, p); err != nil {
		// pageTmpl only reads plain struct fields.
		panic(err)
	}
	return b.String()
}

// Link returns t's source document relative to q's directory, e.g. "adopt/git.md",
// or "../tools/adopt/git.md" when t lives under another quadrant directory.
func Link(q catalog.Quadrant, t catalog.Technology) string {
	prefix := q.Label() + "/"
	if strings.HasPrefix(t.SourcePath, prefix) {
		return strings.TrimPrefix(t.SourcePath, prefix)
	}
	return path.Join("..", t.SourcePath)
}
