// Package ui renders the in-window status overlay.
package ui

// Status is the per-frame readout shown by the HUD.
type Status struct {
	Generation int
	Population int
	TPS        int
	Paused     bool
}

// Label returns the run-state word shown in the overlay.
func (s Status) Label() string {
	if s.Paused {
		return "paused"
	}
	return "running"
}
