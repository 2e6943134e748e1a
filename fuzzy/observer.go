// SPDX-License-Identifier: MIT

package fuzzy

// Report summarizes one Output call.
type Report struct {
	SystemID   string
	SystemName string

	// Output is the centroid divided by the output maxValue; Raw is the centroid.
	Output float64
	Raw    float64

	// Degenerate is set when the aggregated shape had no area.
	Degenerate bool

	// Nodes is the number of nodes evaluated, Cycles how many of them
	// returned the cycle marker.
	Nodes  int
	Cycles int
}

// Observer receives a Report after every Output call.
type Observer interface {
	Evaluated(r Report)
}

// NopObserver discards reports.
type NopObserver struct{}

// Evaluated implements Observer.
func (NopObserver) Evaluated(Report) {}
