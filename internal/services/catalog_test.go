package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyser/internal/models"
)

type memoryCatalogRepo struct {
	rules    []models.KeywordRule
	videos   []models.AdviceVideo
	replaced int
	countErr error
}

func (m *memoryCatalogRepo) FindRules() ([]models.KeywordRule, error) { return m.rules, nil }

func (m *memoryCatalogRepo) FindVideos() ([]models.AdviceVideo, error) { return m.videos, nil }

func (m *memoryCatalogRepo) Count() (int64, error) {
	return int64(len(m.rules)), m.countErr
}

func (m *memoryCatalogRepo) ReplaceAll(rules []models.KeywordRule, videos []models.AdviceVideo) error {
	m.rules = rules
	m.videos = videos
	m.replaced++
	return nil
}

func TestLoadCatalog_SeedsEmptyRepository(t *testing.T) {
	repo := &memoryCatalogRepo{}

	catalog, err := LoadCatalog(repo)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.replaced)
	assert.Len(t, catalog.Rules(), 23)
	assert.Len(t, catalog.Videos(), 12)
}

func TestLoadCatalog_UsesStoredRules(t *testing.T) {
	repo := &memoryCatalogRepo{
		rules: []models.KeywordRule{{Phrase: "Kubernetes", Advice: "Describe the clusters you ran."}},
		videos: []models.AdviceVideo{
			{Advice: "Describe the clusters you ran.", URL: "https://example.com/k8s"},
		},
	}

	catalog, err := LoadCatalog(repo)
	require.NoError(t, err)

	assert.Zero(t, repo.replaced)
	advice := NewSuggestionMatcher(catalog).Match("ran KUBERNETES in production")
	assert.Equal(t, []string{"Describe the clusters you ran."}, advice)
}

func TestLoadCatalog_PropagatesErrors(t *testing.T) {
	repo := &memoryCatalogRepo{countErr: errors.New("connection refused")}

	_, err := LoadCatalog(repo)
	assert.Error(t, err)
}
