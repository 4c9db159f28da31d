package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// maxEmbedChars keeps requests under the embedding model's input limit.
const maxEmbedChars = 40000

type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client     *genai.Client
	embedModel string
	maxRetries int
}

func NewGeminiService(ctx context.Context, apiKey, embedModel string, maxRetries int) (EmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &geminiService{
		client:     client,
		embedModel: embedModel,
		maxRetries: maxRetries,
	}, nil
}

// GenerateEmbedding implements EmbeddingService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
		if err == nil && result != nil && len(result.Embeddings) > 0 {
			return result.Embeddings[0].Values, nil
		}

		if err == nil {
			err = fmt.Errorf("empty embedding result")
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < g.maxRetries {
			log.Printf("⚠️ Embedding attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", g.maxRetries, lastErr)
}

// SemanticSimilarity embeds both texts and returns the cosine of the two
// embeddings, clamped to [0,1].
func SemanticSimilarity(ctx context.Context, embedder EmbeddingService, query, candidate string) (float64, error) {
	queryEmbedding, err := embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to embed job description: %w", err)
	}

	candidateEmbedding, err := embedder.GenerateEmbedding(ctx, candidate)
	if err != nil {
		return 0, fmt.Errorf("failed to embed resume: %w", err)
	}

	return cosine32(queryEmbedding, candidateEmbedding)
}
