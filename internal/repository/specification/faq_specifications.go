package specification

import "gorm.io/gorm"

// ActiveFaqs keeps entries that participate in matching.
type ActiveFaqs struct{}

func (s ActiveFaqs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByFaqCategory filters entries by their admin-assigned category label.
type ByFaqCategory struct {
	Category string
}

func (s ByFaqCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}
