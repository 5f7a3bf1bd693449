package specification

import (
	"gorm.io/gorm"
)

type BySpaceName struct {
	Name string
}

func (s BySpaceName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("space_name = ?", s.Name)
}
