package models

import "time"

// KeywordRule maps a phrase found in a resume to an improvement suggestion.
type KeywordRule struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Phrase    string    `gorm:"type:text;uniqueIndex;not null" json:"phrase"`
	Advice    string    `gorm:"type:text;not null" json:"advice"`
	Position  int       `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (KeywordRule) TableName() string {
	return "keyword_rules"
}

// AdviceVideo links an advice string to a tutorial video.
type AdviceVideo struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Advice    string    `gorm:"type:text;uniqueIndex;not null" json:"advice"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (AdviceVideo) TableName() string {
	return "advice_videos"
}
