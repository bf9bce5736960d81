package radar

import "github.com/kamusis/techradar/internal/catalog"

// Project maps techs onto radar codes. It is pure: the same input always
// yields the same Data, in input order.
func Project(techs []catalog.Technology) Data {
	entries := make([]Entry, 0, len(techs))
	for _, t := range techs {
		tags := make([]string, len(t.Tags))
		copy(tags, t.Tags)
		entries = append(entries, Entry{
			Name:        t.Name,
			Quadrant:    t.Quadrant.Code(),
			Ring:        t.Ring.Code(),
			Tags:        tags,
			Description: t.Description,
			URL:         t.URL(),
		})
	}
	return Data{
		Technologies: entries,
		Quadrants:    QuadrantDescriptors(),
		Rings:        RingDescriptors(),
	}
}

// QuadrantDescriptors returns the static quadrant list in code order.
func QuadrantDescriptors() []QuadrantInfo {
	out := make([]QuadrantInfo, 0, len(catalog.Quadrants))
	for _, q := range catalog.Quadrants {
		out = append(out, QuadrantInfo{Name: q.DisplayName(), ID: q.Code()})
	}
	return out
}

// RingDescriptors returns the static ring list in code order.
func RingDescriptors() []RingInfo {
	out := make([]RingInfo, 0, len(catalog.Rings))
	for _, r := range catalog.Rings {
		out = append(out, RingInfo{Name: r.DisplayName(), ID: r.Code(), Color: r.Color()})
	}
	return out
}
