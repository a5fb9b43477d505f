package analysis

// SegmentRequest represents one raw transcript segment
type SegmentRequest struct {
	Start float64 `json:"start" validate:"gte=0"`
	End   float64 `json:"end" validate:"gte=0"`
	Text  string  `json:"text"`
}

// AnalyzeSegmentsRequest represents the request to analyze pre-transcribed
// segments. An empty segment list is valid and yields a default result.
type AnalyzeSegmentsRequest struct {
	Mode     string           `json:"mode" validate:"omitempty,oneof=meeting sales"`
	Version  string           `json:"version,omitempty"`
	Segments []SegmentRequest `json:"segments" validate:"dive"`
}
