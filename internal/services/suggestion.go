package services

import (
	"strings"

	"alfredoptarigan/resume-analyser/internal/models"
)

type SuggestionMatcher interface {
	// Match returns the advice for every catalog phrase contained in text,
	// without duplicates, in catalog order.
	Match(text string) []string
	// Recommend lists every advice item and attaches a video to at most
	// videoCap of them.
	Recommend(advice []string, videoCap int) []models.Recommendation
}

type suggestionMatcher struct {
	catalog *Catalog
}

func NewSuggestionMatcher(catalog *Catalog) SuggestionMatcher {
	return &suggestionMatcher{catalog: catalog}
}

func (m *suggestionMatcher) Match(text string) []string {
	lower := strings.ToLower(text)

	var advice []string
	seen := make(map[string]bool)
	for _, rule := range m.catalog.rules {
		if !strings.Contains(lower, rule.Phrase) {
			continue
		}
		if seen[rule.Advice] {
			continue
		}
		seen[rule.Advice] = true
		advice = append(advice, rule.Advice)
	}

	return advice
}

func (m *suggestionMatcher) Recommend(advice []string, videoCap int) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(advice))
	attached := 0

	for _, a := range advice {
		rec := models.Recommendation{Advice: a}
		if attached < videoCap {
			if url, ok := m.catalog.VideoFor(a); ok {
				rec.VideoURL = url
				attached++
			}
		}
		recs = append(recs, rec)
	}

	return recs
}
