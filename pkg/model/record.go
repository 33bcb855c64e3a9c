package model

import "time"

// Record is a model of the persistency layer. It describes one shelf
// occupancy session. Records are append-only, the ID is assigned by the
// store on create and never changes afterwards.
type Record struct {
	ID             int64
	Name           string
	Shelf          string
	StartTime      time.Time
	EndTime        time.Time
	ElapsedSeconds int64
}
