package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyser/internal/metrics"
	"alfredoptarigan/resume-analyser/internal/models"
)

// ErrIncompleteInput means the job description or the resume is missing.
// It marks a form that is not ready to analyse, not a failed analysis.
var ErrIncompleteInput = errors.New("job description and resume are both required")

type AnalyzeInput struct {
	JobDescription string
	ResumePDF      []byte
	ResumeFilename string
}

type AnalyzerService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*models.AnalysisResult, error)
	AnalyzeText(ctx context.Context, jobDescription, resumeText string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	pdfParser PDFParserService
	scorer    SimilarityScorer
	matcher   SuggestionMatcher
	embedder  EmbeddingService
	metrics   *metrics.Metrics
	videoCap  int
}

// NewAnalyzerService wires the extract → score → suggest pipeline.
// embedder and m may be nil.
func NewAnalyzerService(
	pdfParser PDFParserService,
	scorer SimilarityScorer,
	matcher SuggestionMatcher,
	embedder EmbeddingService,
	m *metrics.Metrics,
	videoCap int,
) AnalyzerService {
	return &analyzerService{
		pdfParser: pdfParser,
		scorer:    scorer,
		matcher:   matcher,
		embedder:  embedder,
		metrics:   m,
		videoCap:  videoCap,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, input AnalyzeInput) (*models.AnalysisResult, error) {
	if strings.TrimSpace(input.JobDescription) == "" || len(input.ResumePDF) == 0 {
		a.metrics.RecordOutcome(metrics.OutcomeIncomplete)
		return nil, ErrIncompleteInput
	}

	start := time.Now()

	log.Println("📄 Extracting resume text...")
	content, err := a.pdfParser.ExtractTextWithMetaData(input.ResumePDF)
	if err != nil {
		a.metrics.RecordOutcome(metrics.OutcomeInvalidPDF)
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}
	if content.SkippedPages > 0 {
		log.Printf("⚠️  Skipped %d of %d pages without readable text\n", content.SkippedPages, content.PageCount)
	}

	result, err := a.run(ctx, input.JobDescription, content.Text, start)
	if err != nil {
		return nil, err
	}

	result.ResumeFilename = input.ResumeFilename
	result.PageCount = content.PageCount
	return result, nil
}

func (a *analyzerService) AnalyzeText(ctx context.Context, jobDescription, resumeText string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		a.metrics.RecordOutcome(metrics.OutcomeIncomplete)
		return nil, ErrIncompleteInput
	}
	return a.run(ctx, jobDescription, resumeText, time.Now())
}

func (a *analyzerService) run(ctx context.Context, jobDescription, resumeText string, start time.Time) (*models.AnalysisResult, error) {
	log.Println("📊 Scoring resume against job description...")
	score, err := a.scorer.Score(jobDescription, resumeText)
	if err != nil {
		if errors.Is(err, ErrEmptyVocabulary) || errors.Is(err, ErrEmptyDocument) {
			a.metrics.RecordOutcome(metrics.OutcomeEmptyText)
		} else {
			a.metrics.RecordOutcome(metrics.OutcomeError)
		}
		return nil, fmt.Errorf("failed to score resume: %w", err)
	}

	advice := a.matcher.Match(resumeText)
	recs := a.matcher.Recommend(advice, a.videoCap)

	videos := 0
	for _, r := range recs {
		if r.HasVideo() {
			videos++
		}
	}

	result := &models.AnalysisResult{
		ID:              uuid.New(),
		Score:           score,
		ScorePercent:    ToPercent(score),
		Advice:          advice,
		Recommendations: recs,
		VideoCount:      videos,
		CreatedAt:       time.Now(),
	}
	if result.Advice == nil {
		result.Advice = []string{}
	}

	if a.embedder != nil {
		semantic, err := SemanticSimilarity(ctx, a.embedder, jobDescription, resumeText)
		if err != nil {
			log.Printf("⚠️  Warning: semantic similarity unavailable: %v\n", err)
		} else {
			result.SemanticScore = &semantic
		}
	}

	result.Duration = time.Since(start)
	a.metrics.RecordResult(score, advice, videos)

	log.Printf("✅ Analysis %s completed: score %.2f%%, %d advice, %d videos\n",
		result.ID, result.ScorePercent, len(advice), videos)
	return result, nil
}
