package specification

import "gorm.io/gorm"

// ProductSearchQuery filters products whose name, description or craft
// category code contains the query. ILIKE for case-insensitive Postgres
// matching; the query is the raw utterance, matched as a substring.
type ProductSearchQuery struct {
	Query string
}

func (s ProductSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR description ILIKE ? OR craft_category ILIKE ?", pattern, pattern, pattern)
}

// ArtistSearchQuery filters artists by name or bio, case-insensitive.
type ArtistSearchQuery struct {
	Query string
}

func (s ArtistSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR bio ILIKE ?", pattern, pattern)
}

// AvailableOnly keeps purchasable products.
type AvailableOnly struct{}

func (s AvailableOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("available = ?", true)
}

// FeaturedOnly keeps featured rows (products or artists).
type FeaturedOnly struct{}

func (s FeaturedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("featured = ?", true)
}
