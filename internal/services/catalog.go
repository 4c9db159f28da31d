package services

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"alfredoptarigan/resume-analyser/internal/models"
	"alfredoptarigan/resume-analyser/internal/repositories"
)

//go:embed catalog.json
var defaultCatalogJSON []byte

// Catalog is the read-only keyword→advice and advice→video data used by the
// suggestion matcher. It is never mutated after construction, so a single
// instance is shared across requests.
type Catalog struct {
	rules  []models.KeywordRule
	videos map[string]string
}

type catalogFile struct {
	Rules  []models.KeywordRule `json:"rules"`
	Videos []models.AdviceVideo `json:"videos"`
}

func NewCatalog(rules []models.KeywordRule, videos []models.AdviceVideo) (*Catalog, error) {
	c := &Catalog{
		rules:  make([]models.KeywordRule, 0, len(rules)),
		videos: make(map[string]string, len(videos)),
	}

	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		phrase := strings.ToLower(strings.TrimSpace(rule.Phrase))
		if phrase == "" {
			return nil, fmt.Errorf("rule %d has an empty phrase", i)
		}
		if strings.TrimSpace(rule.Advice) == "" {
			return nil, fmt.Errorf("rule %q has empty advice", phrase)
		}
		if seen[phrase] {
			return nil, fmt.Errorf("duplicate phrase %q", phrase)
		}
		seen[phrase] = true

		c.rules = append(c.rules, models.KeywordRule{
			Phrase:   phrase,
			Advice:   rule.Advice,
			Position: i,
		})
	}

	for _, v := range videos {
		if v.Advice == "" || v.URL == "" {
			return nil, fmt.Errorf("video entry for %q is incomplete", v.Advice)
		}
		c.videos[v.Advice] = v.URL
	}

	return c, nil
}

// DefaultCatalog parses the catalog bundled with the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogJSON)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return NewCatalog(file.Rules, file.Videos)
}

// Rules returns a copy of the rules in match order.
func (c *Catalog) Rules() []models.KeywordRule {
	out := make([]models.KeywordRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Videos returns the advice→video entries ordered by rule position,
// followed by any entries whose advice has no rule.
func (c *Catalog) Videos() []models.AdviceVideo {
	out := make([]models.AdviceVideo, 0, len(c.videos))
	listed := make(map[string]bool, len(c.videos))

	for _, rule := range c.rules {
		if url, ok := c.videos[rule.Advice]; ok && !listed[rule.Advice] {
			out = append(out, models.AdviceVideo{Advice: rule.Advice, URL: url})
			listed[rule.Advice] = true
		}
	}
	var orphans []models.AdviceVideo
	for advice, url := range c.videos {
		if !listed[advice] {
			orphans = append(orphans, models.AdviceVideo{Advice: advice, URL: url})
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Advice < orphans[j].Advice })

	return append(out, orphans...)
}

func (c *Catalog) VideoFor(advice string) (string, bool) {
	url, ok := c.videos[advice]
	return url, ok
}

// LoadCatalog reads the catalog from repo, seeding it with the bundled
// defaults when the tables are empty.
func LoadCatalog(repo repositories.CatalogRepository) (*Catalog, error) {
	count, err := repo.Count()
	if err != nil {
		return nil, err
	}

	if count == 0 {
		log.Println("🌱 Catalog tables are empty, seeding defaults")
		if err := SeedCatalog(repo); err != nil {
			return nil, err
		}
	}

	rules, err := repo.FindRules()
	if err != nil {
		return nil, err
	}
	videos, err := repo.FindVideos()
	if err != nil {
		return nil, err
	}

	return NewCatalog(rules, videos)
}

// SeedCatalog replaces the stored catalog with the bundled defaults.
func SeedCatalog(repo repositories.CatalogRepository) error {
	defaults, err := DefaultCatalog()
	if err != nil {
		return err
	}
	if err := repo.ReplaceAll(defaults.Rules(), defaults.Videos()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
