// Package radar projects scanned technologies onto the integer-coded structure
// consumed by the browser radar visualization.
package radar

// Entry is one technology as the visualization sees it.
type Entry struct {
	Name        string   `json:"name"`
	Quadrant    int      `json:"quadrant"`
	Ring        int      `json:"ring"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
}

// QuadrantInfo names one quadrant and its code.
type QuadrantInfo struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// RingInfo names one ring, its code and display colour.
type RingInfo struct {
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Color string `json:"color"`
}

// Data is the aggregate radar document.
type Data struct {
	Technologies []Entry        `json:"technologies"`
	Quadrants    []QuadrantInfo `json:"quadrants"`
	Rings        []RingInfo     `json:"rings"`
}
