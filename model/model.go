package model

// BeatEvent is one beat as reported by the external beat-detection model.
// Immutable once received.
type BeatEvent struct {
	Time  float64 `json:"time"`
	Index int     `json:"index"`
}

// ChordEvent is one chord onset as reported by the external
// chord-recognition model. The label is raw model output and may be noisy.
type ChordEvent struct {
	Chord     string  `json:"chord"`
	OnsetTime float64 `json:"onset_time"`
}

// SynchronizedBeat pairs a beat ordinal with the chord sounding at it.
// The whole sequence is recomputed whenever source chords/beats change.
type SynchronizedBeat struct {
	BeatIndex int    `json:"beat_index"`
	Chord     string `json:"chord"`
}

// MeterCandidate is a downbeat hypothesis for one time signature, usually
// supplied by the beat-detection model alongside the beat list.
type MeterCandidate struct {
	TimeSignature int       `json:"time_signature"`
	Downbeats     []float64 `json:"downbeats"`
}

// AudioMapping ties a non-padding visual cell back to the audio moment it
// represents.
type AudioMapping struct {
	Chord       string  `json:"chord"`
	Timestamp   float64 `json:"timestamp"`
	VisualIndex int     `json:"visual_index"`
	AudioIndex  int     `json:"audio_index"`
}

// ChordGridData is the padded, measure-grouped visual grid. Chords and
// Beats are parallel; a nil beat marks a padding cell. Rebuilt in full
// whenever upstream analysis results or padding parameters change.
type ChordGridData struct {
	Chords               []string       `json:"chords"`
	Beats                []*float64     `json:"beats"`
	TimeSignature        int            `json:"time_signature"`
	HasPadding           bool           `json:"has_padding"`
	PaddingCount         int            `json:"padding_count"`
	ShiftCount           int            `json:"shift_count"`
	TotalPaddingCount    int            `json:"total_padding_count"`
	HasPickupBeats       bool           `json:"has_pickup_beats"`
	PickupBeatsCount     int            `json:"pickup_beats_count"`
	OriginalAudioMapping []AudioMapping `json:"original_audio_mapping"`
}

// AnalysisResult is the full output of one analysis run.
type AnalysisResult struct {
	Id            string             `json:"id,omitempty"`
	TimeSignature int                `json:"time_signature"`
	Shift         int                `json:"shift"`
	BPM           float64            `json:"bpm"`
	SyncedBeats   []SynchronizedBeat `json:"synchronized_beats"`
	Grid          ChordGridData      `json:"grid"`
}
