package specification

import (
	"gorm.io/gorm"
)

type BySourceURL struct {
	SourceURL string
}

func (s BySourceURL) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_url = ?", s.SourceURL)
}
