package catalog

import "strings"

// Quadrant is one of the four fixed radar categories.
type Quadrant int

const (
	QuadrantTechniques Quadrant = iota
	QuadrantTools
	QuadrantPlatforms
	QuadrantLanguagesFrameworks
)

// Quadrants lists every quadrant in canonical order.
var Quadrants = []Quadrant{
	QuadrantTechniques,
	QuadrantTools,
	QuadrantPlatforms,
	QuadrantLanguagesFrameworks,
}

var quadrantLabels = [...]string{"techniques", "tools", "platforms", "languages-frameworks"}

var quadrantNames = [...]string{"Techniques", "Tools", "Platforms", "Languages & Frameworks"}

// Valid reports whether q is one of the four declared quadrants.
func (q Quadrant) Valid() bool {
	return q >= QuadrantTechniques && q <= QuadrantLanguagesFrameworks
}

// Label returns the directory label, e.g. "languages-frameworks".
func (q Quadrant) Label() string {
	if !q.Valid() {
		return quadrantLabels[0]
	}
	return quadrantLabels[q]
}

// DisplayName returns the human-readable name, e.g. "Languages & Frameworks".
func (q Quadrant) DisplayName() string {
	if !q.Valid() {
		return quadrantNames[0]
	}
	return quadrantNames[q]
}

// Code returns the integer code used by the radar visualization.
// Out-of-range values collapse to 0.
func (q Quadrant) Code() int {
	if !q.Valid() {
		return 0
	}
	return int(q)
}

func (q Quadrant) String() string { return q.Label() }

// ParseQuadrant resolves a label (case-insensitive, surrounding space ignored).
func ParseQuadrant(label string) (Quadrant, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for i, l := range quadrantLabels {
		if l == label {
			return Quadrant(i), true
		}
	}
	return QuadrantTechniques, false
}

// QuadrantFromLabel is the total label -> quadrant mapping. Unknown labels map to
// QuadrantTechniques (code 0).
func QuadrantFromLabel(label string) Quadrant {
	q, _ := ParseQuadrant(label)
	return q
}

// Ring is one of the four fixed maturity stages.
type Ring int

const (
	RingAdopt Ring = iota
	RingTrial
	RingAssess
	RingHold
)

// Rings lists every ring in canonical order.
var Rings = []Ring{RingAdopt, RingTrial, RingAssess, RingHold}

var ringLabels = [...]string{"adopt", "trial", "assess", "hold"}

var ringNames = [...]string{"Adopt", "Trial", "Assess", "Hold"}

var ringColors = [...]string{"#93c47d", "#93d2f3", "#fbdb84", "#efafa9"}

func (r Ring) Valid() bool {
	return r >= RingAdopt && r <= RingHold
}

func (r Ring) Label() string {
	if !r.Valid() {
		return ringLabels[0]
	}
	return ringLabels[r]
}

func (r Ring) DisplayName() string {
	if !r.Valid() {
		return ringNames[0]
	}
	return ringNames[r]
}

// Color returns the fixed hex colour the visualization paints the ring with.
func (r Ring) Color() string {
	if !r.Valid() {
		return ringColors[0]
	}
	return ringColors[r]
}

func (r Ring) Code() int {
	if !r.Valid() {
		return 0
	}
	return int(r)
}

func (r Ring) String() string { return r.Label() }

func ParseRing(label string) (Ring, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for i, l := range ringLabels {
		if l == label {
			return Ring(i), true
		}
	}
	return RingAdopt, false
}

// RingFromLabel maps unknown labels to RingAdopt (code 0).
func RingFromLabel(label string) Ring {
	r, _ := ParseRing(label)
	return r
}

// Technology is one parsed technology entry derived from one markdown document.
type Technology struct {
	Name        string
	Quadrant    Quadrant
	Ring        Ring
	Tags        []string
	Description string
	// SourcePath is the document location relative to the docs root, slash separated,
	// e.g. "tools/adopt/git.md". It is unique within one scan.
	SourcePath string
}

// URL returns the rendered page location the visualization links to,
// e.g. "tools/adopt/git.html".
func (t Technology) URL() string {
	p := t.SourcePath
	if i := strings.LastIndexByte(p, '.'); i > strings.LastIndexByte(p, '/') {
		p = p[:i]
	}
	return p + ".html"
}
