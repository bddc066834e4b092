package model

type AnalyzeRequestBody struct {
	Chords           []ChordEvent     `json:"chords"`
	Beats            []float64        `json:"beats"`
	Candidates       []MeterCandidate `json:"candidates,omitempty"`
	PickupBeatsCount int              `json:"pickup_beats_count,omitempty"`
}

type TransposeRequestBody struct {
	Chords    []string `json:"chords"`
	Semitones int      `json:"semitones"`
	TargetKey string   `json:"target_key"`
}

type TransposeResponse struct {
	Chords    []string `json:"chords"`
	TargetKey string   `json:"target_key"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
