package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// fakeClassifier records the batch it received and replays canned results
type fakeClassifier struct {
	results  []ClassifiedText
	err      error
	gotTexts []string
}

func (f *fakeClassifier) ClassifyBatch(_ context.Context, texts []string) ([]ClassifiedText, error) {
	f.gotTexts = texts
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func rawSegs(texts ...string) []entities.RawSegment {
	raw := make([]entities.RawSegment, 0, len(texts))
	for i, text := range texts {
		raw = append(raw, entities.RawSegment{Start: float64(i * 10), End: float64(i*10 + 5), Text: text})
	}
	return raw
}

func TestEnrichMergesContinuationFragments(t *testing.T) {
	e := NewEnricher(DefaultKeywords(), nil, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"We shipped the release.",
		"and the metrics look good",
	))

	if len(segments) != 1 {
		t.Fatalf("expected 1 merged segment, got %d", len(segments))
	}
	if segments[0].Text != "We shipped the release. and the metrics look good" {
		t.Fatalf("unexpected merged text: %q", segments[0].Text)
	}
	if segments[0].End != 15 {
		t.Fatalf("expected merged end 15, got %v", segments[0].End)
	}
}

func TestEnrichMergesUnterminatedLowercaseStart(t *testing.T) {
	e := NewEnricher(DefaultKeywords(), nil, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"We are still waiting",
		"on the vendor to respond",
	))

	if len(segments) != 1 {
		t.Fatalf("expected 1 merged segment, got %d", len(segments))
	}
}

func TestEnrichKeepsSeparateSentences(t *testing.T) {
	e := NewEnricher(DefaultKeywords(), nil, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"The demo went well.",
		"Next item is the roadmap.",
	))

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
}

func TestEnrichTagsKeywordsAfterMerging(t *testing.T) {
	e := NewEnricher(DefaultKeywords(), nil, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"There is a serious bug in the importer.",
	))

	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if !segments[0].HasKeyword("issue") {
		t.Fatalf("expected issue tag, got %v", segments[0].Keywords)
	}
}

func TestEnrichSkipsShortSegments(t *testing.T) {
	fc := &fakeClassifier{results: []ClassifiedText{{Label: "POSITIVE", Score: 0.9}}}
	e := NewEnricher(DefaultKeywords(), fc, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"Okay.",
		"The demo went really well today!",
	))

	if len(fc.gotTexts) != 1 {
		t.Fatalf("expected 1 classified text, got %d", len(fc.gotTexts))
	}
	if segments[0].SentimentLabel != entities.SentimentNeutral {
		t.Fatalf("short segment should stay neutral, got %s", segments[0].SentimentLabel)
	}
	if segments[1].SentimentLabel != entities.SentimentPositive {
		t.Fatalf("expected positive label, got %s", segments[1].SentimentLabel)
	}
	if segments[1].SentimentScore != 0.9 {
		t.Fatalf("expected signed score 0.9, got %v", segments[1].SentimentScore)
	}
}

func TestEnrichNegativeSignedScore(t *testing.T) {
	fc := &fakeClassifier{results: []ClassifiedText{{Label: "NEGATIVE", Score: 0.8}}}
	e := NewEnricher(DefaultKeywords(), fc, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"This whole situation is really bad.",
	))

	if segments[0].SentimentScore != -0.8 {
		t.Fatalf("expected -0.8, got %v", segments[0].SentimentScore)
	}
	if segments[0].SentimentConfidence != 0.8 {
		t.Fatalf("expected confidence 0.8, got %v", segments[0].SentimentConfidence)
	}
}

func TestEnrichClassifierFailureStaysNeutral(t *testing.T) {
	fc := &fakeClassifier{err: errors.New("model down")}
	e := NewEnricher(DefaultKeywords(), fc, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"The rollout plan looks solid to me.",
	))

	if segments[0].SentimentLabel != entities.SentimentNeutral {
		t.Fatalf("expected neutral on classifier failure, got %s", segments[0].SentimentLabel)
	}
	if segments[0].SentimentScore != 0 {
		t.Fatalf("expected zero score, got %v", segments[0].SentimentScore)
	}
}

func TestEnrichBatchMismatchStaysNeutral(t *testing.T) {
	fc := &fakeClassifier{results: []ClassifiedText{}}
	e := NewEnricher(DefaultKeywords(), fc, nil)

	segments := e.Enrich(context.Background(), rawSegs(
		"The rollout plan looks solid to me.",
	))

	if segments[0].SentimentLabel != entities.SentimentNeutral {
		t.Fatalf("expected neutral on batch mismatch, got %s", segments[0].SentimentLabel)
	}
}

func TestMapSentimentLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"POSITIVE", entities.SentimentPositive},
		{"positive", entities.SentimentPositive},
		{"5 stars", entities.SentimentPositive},
		{"4 stars", entities.SentimentPositive},
		{"NEGATIVE", entities.SentimentNegative},
		{"1 star", entities.SentimentNegative},
		{"2 stars", entities.SentimentNegative},
		{"NEUTRAL", entities.SentimentNeutral},
		{"LABEL_1", entities.SentimentNeutral},
		{"3 stars", entities.SentimentNeutral},
	}
	for _, tc := range cases {
		if got := mapSentimentLabel(tc.raw); got != tc.want {
			t.Errorf("mapSentimentLabel(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
