package domain

import "time"

// Report summarizes what preprocessing did to one dataset.
type Report struct {
	Name              string
	RowsIn            int
	RowsOut           int
	DuplicatesRemoved int
	Classes           []string
	Duration          time.Duration
}
