// SPDX-License-Identifier: MIT

package metrics

// Metric names (N) and help texts (H).
const (
	EvaluationsN = "fuzzy_evaluations_total"
	EvaluationsH = "Total number of Output calls."

	NodesN = "fuzzy_nodes_evaluated_total"
	NodesH = "Total number of inference nodes evaluated by Output calls."

	CyclesN = "fuzzy_cycles_detected_total"
	CyclesH = "Total number of nodes that hit the cycle depth cutoff."

	DegenerateN = "fuzzy_degenerate_outputs_total"
	DegenerateH = "Total number of Output calls whose aggregated shape had no area."

	OutputN = "fuzzy_output"
	OutputH = "Normalized defuzzified output."

	LastOutputN = "fuzzy_last_output"
	LastOutputH = "Most recent normalized defuzzified output."
)

// SystemLabel is the label carrying the system name, or its id when unnamed.
const SystemLabel = "system"
