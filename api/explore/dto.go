// Package exploreapi provides the HTTP surface for running droid explorations.
package exploreapi

// ExploreRequest represents a request to run a droid through a maze layout.
type ExploreRequest struct {
	Name   string `json:"name"`
	Layout string `json:"layout" binding:"required"`
	Frames bool   `json:"frames"`
}
