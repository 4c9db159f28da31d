package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity_IdenticalDocumentsScoreOne(t *testing.T) {
	scorer := NewSimilarityScorer()
	text := "Senior Go engineer with Kubernetes, PostgreSQL and gRPC experience"

	score, err := scorer.Score(text, text)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestSimilarity_DisjointDocumentsScoreZero(t *testing.T) {
	scorer := NewSimilarityScorer()

	score, err := scorer.Score("golang kubernetes postgres", "watercolor painting portraits")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestSimilarity_KnownValue(t *testing.T) {
	scorer := NewSimilarityScorer()

	// apple appears in both documents (idf 1), banana and cherry in one each
	// (idf ln(3/2)+1), so the cosine is 1 / (1 + idf^2).
	score, err := scorer.Score("apple banana", "apple cherry")
	require.NoError(t, err)
	assert.InDelta(t, 0.33609, score, 1e-4)
}

func TestSimilarity_TokenizationIgnoresCaseAndShortTokens(t *testing.T) {
	scorer := NewSimilarityScorer()

	score, err := scorer.Score("Python, SQL; a I", "python sql")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestSimilarity_RankMultipleCandidates(t *testing.T) {
	scorer := NewSimilarityScorer()
	query := "backend engineer golang postgres kubernetes"

	scores, err := scorer.Rank(query, []string{
		"golang postgres kubernetes backend engineer",
		"golang developer",
		"pastry chef",
	})
	require.NoError(t, err)
	require.Len(t, scores, 3)

	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
	assert.Greater(t, scores[0], scores[1])
	assert.Greater(t, scores[1], scores[2])
	assert.Equal(t, 0.0, scores[2])
}

func TestSimilarity_VocabularyIsRebuiltPerCall(t *testing.T) {
	scorer := NewSimilarityScorer()

	first, err := scorer.Score("apple banana", "apple cherry")
	require.NoError(t, err)

	_, err = scorer.Score("zebra yak walrus", "zebra")
	require.NoError(t, err)

	again, err := scorer.Score("apple banana", "apple cherry")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestSimilarity_Errors(t *testing.T) {
	scorer := NewSimilarityScorer()

	tests := []struct {
		name       string
		query      string
		candidates []string
		wantErr    error
	}{
		{name: "both empty", query: "", candidates: []string{""}, wantErr: ErrEmptyVocabulary},
		{name: "only stripped terms", query: "a I ,", candidates: []string{"- x"}, wantErr: ErrEmptyVocabulary},
		{name: "empty resume", query: "golang engineer", candidates: []string{""}, wantErr: ErrEmptyDocument},
		{name: "empty job description", query: "   ", candidates: []string{"golang engineer"}, wantErr: ErrEmptyDocument},
		{name: "no candidates", query: "golang", candidates: nil, wantErr: ErrNoCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := scorer.Rank(tt.query, tt.candidates)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, scores)
		})
	}
}

func TestToPercent(t *testing.T) {
	assert.Equal(t, 100.0, ToPercent(1))
	assert.Equal(t, 0.0, ToPercent(0))
	assert.Equal(t, 33.61, ToPercent(0.336097))
}

func TestCosine32(t *testing.T) {
	sim, err := cosine32([]float32{1, 0}, []float32{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)

	sim, err = cosine32([]float32{1, 0}, []float32{-1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)

	_, err = cosine32([]float32{1}, []float32{1, 2})
	assert.Error(t, err)
}
