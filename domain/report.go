// Package domain holds the records exchanged between the exploration service and its callers.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-droid/game"
	"github.com/google/uuid"
)

// ExploreRequest asks for one droid to explore one maze layout.
type ExploreRequest struct {
	Name   string // Droid display name, defaulted when empty
	Layout string // Maze layout, see maze.Parse
	Frames bool   // Keep a render of the local map after every cycle
}

// Report is the outcome of one exploration.
type Report struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Width           int               `json:"width"`
	Depth           int               `json:"depth"`
	Steps           int               `json:"steps"`
	Solved          bool              `json:"solved"`
	Error           string            `json:"error,omitempty"`
	Map             string            `json:"map"`
	Trail           []game.Coordinate `json:"trail"`
	Frames          []string          `json:"frames,omitempty"`
	FramesTruncated bool              `json:"frames_truncated,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
