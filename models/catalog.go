package models

import "time"

// CatalogEntry is one row of the local backup catalog: the last successful
// backup of a solution.
type CatalogEntry struct {
	UUID          string     `json:"uuid"`
	Track         string     `json:"track"`
	Exercise      string     `json:"exercise"`
	MarkerKind    MarkerKind `json:"marker_kind"`
	MarkerValue   string     `json:"marker_value"`
	NumIterations int        `json:"num_iterations"`
	Path          string     `json:"path"`
	BackedUpAt    time.Time  `json:"backed_up_at"`
}

// CatalogFilter narrows catalog listings. Empty fields do not filter.
type CatalogFilter struct {
	Tracks    []string
	Exercises []string
}
