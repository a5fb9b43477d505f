package sessionlog

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// ruleVersion tags each entry with the rule set that produced it, so stored
// aggregates can be compared across rule changes.
const ruleVersion = "2.0"

// Entry is one JSONL line of per-session aggregates
type Entry struct {
	SessionID    string         `json:"session_id"`
	Mode         string         `json:"mode"`
	DurationSec  float64        `json:"duration_sec"`
	SegmentCount int            `json:"segment_count"`
	AvgSentiment float64        `json:"avg_sentiment"`
	MinSentiment float64        `json:"min_sentiment"`
	Volatility   float64        `json:"volatility"`
	LabelCounts  map[string]int `json:"label_counts"`
	RuleVersion  string         `json:"rule_version"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Writer appends session aggregates to a JSONL file. Logging failures are
// reported through the logger, never returned: observability must not break
// an analysis that already succeeded.
type Writer struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// NewWriter creates a session log writer for the given file path
func NewWriter(path string, logger *zap.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Log appends one entry built from the session's enriched segments
func (w *Writer) Log(session *entities.AnalysisSession) {
	if w == nil || w.path == "" || session == nil {
		return
	}

	entry := buildEntry(session)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		if w.logger != nil {
			w.logger.Warn("⚠️ Failed to create session log directory",
				zap.String("path", w.path),
				zap.Error(err))
		}
		return
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		if w.logger != nil {
			w.logger.Warn("⚠️ Failed to open session log",
				zap.String("path", w.path),
				zap.Error(err))
		}
		return
	}
	defer f.Close()

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	line = append(line, '\n')
	if _, err := f.Write(line); err != nil && w.logger != nil {
		w.logger.Warn("⚠️ Failed to write session log entry",
			zap.String("session_id", entry.SessionID),
			zap.Error(err))
	}
}

func buildEntry(session *entities.AnalysisSession) Entry {
	entry := Entry{
		SessionID:    session.ID.String(),
		Mode:         session.Mode,
		DurationSec:  session.Duration(),
		SegmentCount: len(session.Segments),
		LabelCounts:  map[string]int{},
		RuleVersion:  ruleVersion,
		CreatedAt:    time.Now().UTC(),
	}

	if len(session.Segments) == 0 {
		return entry
	}

	sum := 0.0
	min := session.Segments[0].SentimentScore
	for _, seg := range session.Segments {
		sum += seg.SentimentScore
		if seg.SentimentScore < min {
			min = seg.SentimentScore
		}
		entry.LabelCounts[seg.SentimentLabel]++
	}
	avg := sum / float64(len(session.Segments))

	variance := 0.0
	for _, seg := range session.Segments {
		d := seg.SentimentScore - avg
		variance += d * d
	}
	variance /= float64(len(session.Segments))

	entry.AvgSentiment = avg
	entry.MinSentiment = min
	entry.Volatility = math.Sqrt(variance)
	return entry
}
