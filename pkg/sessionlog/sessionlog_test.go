package sessionlog

import (
	"bufio"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

func testSession() *entities.AnalysisSession {
	session := entities.NewAnalysisSession("meeting")
	session.Segments = []entities.Segment{
		{Start: 0, End: 10, Text: "Kickoff went well.", SentimentLabel: "Positive", SentimentScore: 0.6},
		{Start: 10, End: 20, Text: "The deployment is still blocked.", SentimentLabel: "Negative", SentimentScore: -0.8},
		{Start: 20, End: 30, Text: "We will sync tomorrow.", SentimentLabel: "Neutral", SentimentScore: 0},
	}
	return session
}

func TestLog_WritesJSONLEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sessions.jsonl")
	w := NewWriter(path, nil)

	session := testSession()
	w.Log(session)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("session log not written: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("expected one JSONL line")
	}
	var entry Entry
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSONL line: %v", err)
	}

	if entry.SessionID != session.ID.String() {
		t.Fatalf("wrong session id %q", entry.SessionID)
	}
	if entry.Mode != "meeting" {
		t.Fatalf("wrong mode %q", entry.Mode)
	}
	if entry.RuleVersion != "2.0" {
		t.Fatalf("wrong rule version %q", entry.RuleVersion)
	}
	if entry.SegmentCount != 3 {
		t.Fatalf("wrong segment count %d", entry.SegmentCount)
	}
	if entry.DurationSec != 30 {
		t.Fatalf("wrong duration %v", entry.DurationSec)
	}
	if entry.MinSentiment != -0.8 {
		t.Fatalf("wrong min sentiment %v", entry.MinSentiment)
	}
	wantAvg := (0.6 - 0.8 + 0.0) / 3
	if math.Abs(entry.AvgSentiment-wantAvg) > 1e-9 {
		t.Fatalf("wrong avg sentiment %v, want %v", entry.AvgSentiment, wantAvg)
	}
	if entry.Volatility <= 0 {
		t.Fatalf("expected positive volatility, got %v", entry.Volatility)
	}
	if entry.LabelCounts["Positive"] != 1 || entry.LabelCounts["Negative"] != 1 || entry.LabelCounts["Neutral"] != 1 {
		t.Fatalf("wrong label counts %v", entry.LabelCounts)
	}

	if scanner.Scan() {
		t.Fatal("expected exactly one line")
	}
}

func TestLog_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.jsonl")
	w := NewWriter(path, nil)

	w.Log(testSession())
	w.Log(testSession())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("session log not written: %v", err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Fatalf("expected 2 lines, got %d", lines)
	}
}

func TestLog_DisabledAndNilSafe(t *testing.T) {
	// No path configured: logging is a no-op
	w := NewWriter("", nil)
	w.Log(testSession())

	// Nil session: no-op
	w = NewWriter(filepath.Join(t.TempDir(), "sessions.jsonl"), nil)
	w.Log(nil)

	// Nil writer: no-op
	var nilWriter *Writer
	nilWriter.Log(testSession())
}
