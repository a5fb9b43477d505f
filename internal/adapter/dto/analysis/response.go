package analysis

import (
	"time"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// SessionResponse represents one analyzed session in responses. Result holds
// the mode-specific verdict object.
type SessionResponse struct {
	SessionID string      `json:"session_id"`
	Mode      string      `json:"mode"`
	AudioURL  string      `json:"audio_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Result    interface{} `json:"result"`
}

// FromSession maps a domain session to its response shape
func FromSession(s *entities.AnalysisSession) *SessionResponse {
	resp := &SessionResponse{
		SessionID: s.ID.String(),
		Mode:      s.Mode,
		AudioURL:  s.AudioURL,
		CreatedAt: s.CreatedAt,
	}
	if s.Sales != nil {
		resp.Result = s.Sales
	} else {
		resp.Result = s.Meeting
	}
	return resp
}
