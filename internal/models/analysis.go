package models

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation struct {
	Advice   string `json:"advice"`
	VideoURL string `json:"video_url,omitempty"`
}

// HasVideo reports whether a video was attached to this recommendation.
func (r Recommendation) HasVideo() bool {
	return r.VideoURL != ""
}

type AnalysisResult struct {
	ID              uuid.UUID        `json:"id"`
	ResumeFilename  string           `json:"resume_filename,omitempty"`
	PageCount       int              `json:"page_count"`
	Score           float64          `json:"score"`
	ScorePercent    float64          `json:"score_percent"`
	SemanticScore   *float64         `json:"semantic_score,omitempty"`
	Advice          []string         `json:"advice"`
	Recommendations []Recommendation `json:"recommendations"`
	VideoCount      int              `json:"video_count"`
	Duration        time.Duration    `json:"duration_ns"`
	CreatedAt       time.Time        `json:"created_at"`
}

type AnalyzeResponse struct {
	Status string          `json:"status"`
	Result *AnalysisResult `json:"result"`
}

type CatalogResponse struct {
	Rules  []KeywordRule `json:"rules"`
	Videos []AdviceVideo `json:"videos"`
}
