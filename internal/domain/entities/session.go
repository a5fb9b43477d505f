package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisSession is one completed analysis, cached by ID so the UI can
// re-fetch results and the pattern miner can re-read the enriched segments.
type AnalysisSession struct {
	ID        uuid.UUID      `json:"id"`
	Mode      string         `json:"mode"`
	AudioURL  string         `json:"audio_url,omitempty"`
	Segments  []Segment      `json:"segments"`
	Meeting   *MeetingResult `json:"meeting,omitempty"`
	Sales     *SalesResult   `json:"sales,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewAnalysisSession creates a session shell for one analysis run
func NewAnalysisSession(mode string) *AnalysisSession {
	return &AnalysisSession{
		ID:        uuid.New(),
		Mode:      mode,
		CreatedAt: time.Now(),
	}
}

// Duration returns the conversation length in seconds based on segment times
func (s *AnalysisSession) Duration() float64 {
	if s == nil || len(s.Segments) == 0 {
		return 0
	}
	first := s.Segments[0].Start
	last := s.Segments[0].End
	for _, seg := range s.Segments {
		if seg.Start < first {
			first = seg.Start
		}
		if seg.End > last {
			last = seg.End
		}
	}
	return last - first
}
