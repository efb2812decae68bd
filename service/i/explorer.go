package i

import (
	dmn "github.com/beka-birhanu/vinom-droid/domain"
	"github.com/google/uuid"
)

// Explorer runs droids through maze layouts and keeps their reports.
type Explorer interface {
	// Explore parses the layout, runs a droid through it and stores the report.
	// A droid that fails to reach End still yields a report; only requests that
	// cannot start an exploration return an error.
	Explore(req dmn.ExploreRequest) (*dmn.Report, error)

	// Report returns a stored report by its ID.
	Report(id uuid.UUID) (*dmn.Report, error)
}
