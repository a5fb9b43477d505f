package analysis

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// minClassifiableWords is the shortest utterance worth sending to the
// sentiment model. Shorter fragments default to Neutral.
const minClassifiableWords = 4

// ClassifiedText is one raw classifier verdict for a batch entry
type ClassifiedText struct {
	Label string
	Score float64
}

// SentimentClassifier is the external sentiment model. One conversation is
// classified in a single batched call.
type SentimentClassifier interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]ClassifiedText, error)
}

// Enricher merges fragmented utterances and attaches sentiment and keyword
// metadata. A nil classifier puts the enricher in Neutral-only mode.
type Enricher struct {
	keywords   Keywords
	classifier SentimentClassifier
	logger     *zap.Logger
}

// NewEnricher creates an enricher with the given taxonomy and classifier
func NewEnricher(keywords Keywords, classifier SentimentClassifier, logger *zap.Logger) *Enricher {
	return &Enricher{
		keywords:   keywords,
		classifier: classifier,
		logger:     logger,
	}
}

// Enrich turns raw transcript segments into enriched ones. Fragment merging
// runs first because merged text changes which keywords match.
func (e *Enricher) Enrich(ctx context.Context, raw []entities.RawSegment) []entities.Segment {
	merged := e.mergeFragments(raw)

	segments := make([]entities.Segment, 0, len(merged))
	for _, r := range merged {
		segments = append(segments, entities.Segment{
			Start:          r.Start,
			End:            r.End,
			Text:           r.Text,
			SentimentLabel: entities.SentimentNeutral,
			Keywords:       e.tagKeywords(r.Text),
		})
	}

	e.classifySegments(ctx, segments)
	return segments
}

// mergeFragments joins over-segmented speech-to-text output. A segment is
// folded into its predecessor when it starts with a continuation word, or
// when the predecessor's text has no terminal punctuation and the segment
// starts with a lowercase letter.
func (e *Enricher) mergeFragments(raw []entities.RawSegment) []entities.RawSegment {
	if len(raw) == 0 {
		return nil
	}

	merged := make([]entities.RawSegment, 0, len(raw))
	current := raw[0]
	for _, next := range raw[1:] {
		if e.continuesPrevious(current.Text, next.Text) {
			current.Text = strings.TrimSpace(current.Text) + " " + strings.TrimSpace(next.Text)
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)
	return merged
}

func (e *Enricher) continuesPrevious(prev, next string) bool {
	next = strings.TrimSpace(next)
	if next == "" {
		return false
	}

	firstWord := strings.ToLower(strings.Fields(next)[0])
	firstWord = strings.Trim(firstWord, ",.")
	for _, cw := range e.keywords.Continuations {
		if firstWord == cw {
			return true
		}
	}

	prev = strings.TrimSpace(prev)
	if prev == "" {
		return false
	}
	last := rune(prev[len(prev)-1])
	terminal := last == '.' || last == '!' || last == '?'
	first := []rune(next)[0]
	return !terminal && unicode.IsLower(first)
}

// tagKeywords tags the segment with every taxonomy category whose phrase
// list intersects the lower-cased text, at most once per category.
func (e *Enricher) tagKeywords(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, cat := range []struct {
		name    string
		phrases []string
	}{
		{"ownership", e.keywords.Ownership},
		{"decision", e.keywords.DecisionPhrases},
		{"execution", e.keywords.ExecutionVerbs},
		{"issue", e.keywords.IssueTerms},
		{"risk", e.keywords.RiskTerms},
		{"dependency", e.keywords.DependencyTerms},
	} {
		if containsAny(lower, cat.phrases) {
			tags = append(tags, cat.name)
		}
	}
	return tags
}

// classifySegments runs one batched classifier call for all eligible
// segments and writes the mapped results back. Classifier failure leaves
// everything Neutral; the pipeline must stay usable without sentiment.
func (e *Enricher) classifySegments(ctx context.Context, segments []entities.Segment) {
	if e.classifier == nil {
		return
	}

	var texts []string
	var indexes []int
	for i, seg := range segments {
		if len(strings.Fields(seg.Text)) >= minClassifiableWords {
			texts = append(texts, seg.Text)
			indexes = append(indexes, i)
		}
	}
	if len(texts) == 0 {
		return
	}

	results, err := e.classifier.ClassifyBatch(ctx, texts)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("Sentiment classification failed, continuing in neutral mode",
				zap.Int("segments", len(texts)),
				zap.Error(err))
		}
		return
	}
	if len(results) != len(texts) {
		if e.logger != nil {
			e.logger.Warn("Sentiment batch size mismatch, continuing in neutral mode",
				zap.Int("sent", len(texts)),
				zap.Int("received", len(results)))
		}
		return
	}

	for n, res := range results {
		i := indexes[n]
		label := mapSentimentLabel(res.Label)
		segments[i].SentimentLabel = label
		segments[i].SentimentConfidence = res.Score
		segments[i].SentimentScore = signedScore(label, res.Score)
	}
}

// mapSentimentLabel normalises raw classifier labels (including multilingual
// and star-rating formats) into the three canonical labels by substring match.
func mapSentimentLabel(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "pos"), strings.Contains(lower, "4 star"), strings.Contains(lower, "5 star"):
		return entities.SentimentPositive
	case strings.Contains(lower, "neg"), strings.Contains(lower, "1 star"), strings.Contains(lower, "2 star"):
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}

func signedScore(label string, confidence float64) float64 {
	switch label {
	case entities.SentimentPositive:
		return confidence
	case entities.SentimentNegative:
		return -confidence
	default:
		return 0
	}
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
