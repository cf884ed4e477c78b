package domain

import "time"

// PlanSource identifies which generator produced a PlanResult.
type PlanSource string

const (
	SourceLocal  PlanSource = "local"
	SourceRemote PlanSource = "remote"
)

// PlanResult is the content of a session's single current-result slot.
// It is replaced wholesale on every generate action.
type PlanResult struct {
	Source    PlanSource    `json:"source"`
	CreatedAt time.Time     `json:"created_at"`
	Request   PlanRequest   `json:"request"`
	Itinerary *Itinerary    `json:"itinerary,omitempty"`
	Remote    *RemoteResult `json:"remote,omitempty"`
	// Origin is resolved for the map view; nil when not geocoded.
	Origin *Coordinates `json:"origin,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Failed reports whether the slot holds an error instead of a plan.
func (r *PlanResult) Failed() bool { return r.Error != "" }

// PlanRequest echoes the user-facing trip controls.
type PlanRequest struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	Days        int       `json:"days"`
	Budget      int       `json:"budget"`
	Interests   []string  `json:"interests"`
	UseRemote   bool      `json:"use_remote"`
}
