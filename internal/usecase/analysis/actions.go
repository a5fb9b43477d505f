package analysis

import (
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// ExtractActions pulls committed tasks out of the transcript. A segment
// qualifies when it starts with a first-person future marker and names a
// concrete execution verb; pure ownership declarations without a task
// ("I'll take ownership") are skipped.
func (a *Analyzer) ExtractActions(segments []entities.Segment) []entities.ActionItem {
	items := make([]entities.ActionItem, 0)
	for _, seg := range segments {
		lower := strings.ToLower(strings.TrimSpace(seg.Text))
		if !startsWithAny(lower, a.keywords.ActionMarkers) {
			continue
		}
		if !containsAny(lower, a.keywords.ExecutionVerbs) {
			continue
		}
		if containsAny(lower, a.keywords.OwnershipOnly) {
			continue
		}
		items = append(items, entities.ActionItem{
			Task:     strings.TrimSpace(seg.Text),
			Owner:    extractOwner(lower),
			Deadline: a.extractDeadline(seg.Text),
			Time:     seg.Start,
		})
	}
	return items
}

// extractOwner assigns the speaker-relative owner implied by the marker.
// Without diarization the best available resolution is self vs. team.
func extractOwner(lower string) string {
	switch {
	case strings.HasPrefix(lower, "i will"), strings.HasPrefix(lower, "i'll"),
		strings.HasPrefix(lower, "i am going to"), strings.HasPrefix(lower, "i'm going to"):
		return "Self"
	case strings.HasPrefix(lower, "we will"), strings.HasPrefix(lower, "we'll"),
		strings.HasPrefix(lower, "we are going to"), strings.HasPrefix(lower, "we're going to"):
		return "Team"
	default:
		return entities.OwnerUnassigned
	}
}

// extractDeadline returns the first deadline token present in the text, in
// its original casing, or the unspecified default.
func (a *Analyzer) extractDeadline(text string) string {
	lower := strings.ToLower(text)
	bestIdx := -1
	bestLen := 0
	for _, token := range a.keywords.DeadlineTokens {
		idx := strings.Index(lower, token)
		if idx < 0 {
			continue
		}
		if bestIdx == -1 || idx < bestIdx || (idx == bestIdx && len(token) > bestLen) {
			bestIdx = idx
			bestLen = len(token)
		}
	}
	if bestIdx == -1 {
		return entities.DeadlineUnspecified
	}
	return text[bestIdx : bestIdx+bestLen]
}

// IsDependency reports whether an action item references blocking work such
// as approvals, sign-offs or QA.
func (a *Analyzer) IsDependency(item entities.ActionItem) bool {
	return containsAny(strings.ToLower(item.Task), a.keywords.DependencyTerms)
}

// DependenciesControlled is true when every dependency-like action item has
// both an owner and a deadline. No dependencies counts as controlled.
func (a *Analyzer) DependenciesControlled(items []entities.ActionItem) bool {
	for _, item := range items {
		if a.IsDependency(item) && !item.Controlled() {
			return false
		}
	}
	return true
}

func startsWithAny(lower string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
