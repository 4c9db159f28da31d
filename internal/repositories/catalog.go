package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-analyser/internal/models"
)

type CatalogRepository interface {
	FindRules() ([]models.KeywordRule, error)
	FindVideos() ([]models.AdviceVideo, error)
	Count() (int64, error)
	ReplaceAll(rules []models.KeywordRule, videos []models.AdviceVideo) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// FindRules implements CatalogRepository.
func (r *catalogRepository) FindRules() ([]models.KeywordRule, error) {
	var rules []models.KeywordRule
	if err := r.db.Order("position ASC, id ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to find keyword rules: %w", err)
	}
	return rules, nil
}

// FindVideos implements CatalogRepository.
func (r *catalogRepository) FindVideos() ([]models.AdviceVideo, error) {
	var videos []models.AdviceVideo
	if err := r.db.Order("id ASC").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to find advice videos: %w", err)
	}
	return videos, nil
}

// Count implements CatalogRepository.
func (r *catalogRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.KeywordRule{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count keyword rules: %w", err)
	}
	return count, nil
}

// ReplaceAll implements CatalogRepository.
func (r *catalogRepository) ReplaceAll(rules []models.KeywordRule, videos []models.AdviceVideo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.KeywordRule{}).Error; err != nil {
			return fmt.Errorf("failed to clear keyword rules: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.AdviceVideo{}).Error; err != nil {
			return fmt.Errorf("failed to clear advice videos: %w", err)
		}

		if len(rules) > 0 {
			for i := range rules {
				rules[i].ID = 0
				rules[i].Position = i
			}
			if err := tx.Create(&rules).Error; err != nil {
				return fmt.Errorf("failed to insert keyword rules: %w", err)
			}
		}

		if len(videos) > 0 {
			for i := range videos {
				videos[i].ID = 0
			}
			if err := tx.Create(&videos).Error; err != nil {
				return fmt.Errorf("failed to insert advice videos: %w", err)
			}
		}

		return nil
	})
}
