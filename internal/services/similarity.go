package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no usable terms")
	ErrEmptyDocument   = errors.New("document contains no usable terms")
	ErrNoCandidates    = errors.New("no candidate documents to score")
)

// Tokens are runs of two or more letters, digits or underscores.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

type SimilarityScorer interface {
	// Rank returns one cosine similarity in [0,1] per candidate, measured
	// against query over a TF-IDF vocabulary fitted to query and candidates together.
	Rank(query string, candidates []string) ([]float64, error)
	Score(query, candidate string) (float64, error)
}

type tfidfScorer struct{}

func NewSimilarityScorer() SimilarityScorer {
	return &tfidfScorer{}
}

func (s *tfidfScorer) Score(query, candidate string) (float64, error) {
	scores, err := s.Rank(query, []string{candidate})
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

func (s *tfidfScorer) Rank(query string, candidates []string) ([]float64, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	documents := append([]string{query}, candidates...)
	vectors, err := vectorize(documents)
	if err != nil {
		return nil, err
	}

	queryVector := vectors[0]
	scores := make([]float64, len(candidates))
	for i, vec := range vectors[1:] {
		scores[i] = cosine(queryVector, vec)
	}

	return scores, nil
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// vectorize builds L2-normalised TF-IDF vectors over a vocabulary derived
// from documents. idf uses the smoothed form ln((1+n)/(1+df)) + 1.
func vectorize(documents []string) ([][]float64, error) {
	vocabulary := make(map[string]int)
	counts := make([]map[int]float64, len(documents))

	for i, doc := range documents {
		counts[i] = make(map[int]float64)
		for _, term := range tokenize(doc) {
			idx, ok := vocabulary[term]
			if !ok {
				idx = len(vocabulary)
				vocabulary[term] = idx
			}
			counts[i][idx]++
		}
	}

	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	for i, c := range counts {
		if len(c) == 0 {
			role := "query"
			if i > 0 {
				role = fmt.Sprintf("candidate %d", i)
			}
			return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, role)
		}
	}

	df := make([]float64, len(vocabulary))
	for _, c := range counts {
		for idx := range c {
			df[idx]++
		}
	}

	n := float64(len(documents))
	idf := make([]float64, len(vocabulary))
	for idx, d := range df {
		idf[idx] = math.Log((1+n)/(1+d)) + 1
	}

	vectors := make([][]float64, len(documents))
	for i, c := range counts {
		vec := make([]float64, len(vocabulary))
		for idx, tf := range c {
			vec[idx] = tf * idf[idx]
		}
		normalize(vec)
		vectors[i] = vec
	}

	return vectors, nil
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim))
}

func cosine32(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding size mismatch: %d != %d", len(a), len(b))
	}

	x := make([]float64, len(a))
	y := make([]float64, len(b))
	for i := range a {
		x[i] = float64(a[i])
		y[i] = float64(b[i])
	}
	return cosine(x, y), nil
}

// ToPercent converts a similarity in [0,1] to a percentage rounded to two decimals.
func ToPercent(score float64) float64 {
	return math.Round(score*10000) / 100
}
