package service

import "errors"

var (
	// ErrListSolutions is returned when a page of the solutions listing
	// cannot be fetched. The run stops at that page.
	ErrListSolutions = errors.New("failed to fetch solutions")

	// ErrTrackDirectory is returned when the directory of a track cannot be
	// created. The run stops before spawning the page's solutions.
	ErrTrackDirectory = errors.New("failed to create track directory")
)
