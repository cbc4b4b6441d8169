package persistence

import "gorm.io/gorm"

// slugsWithBase plucks the slugs of the scoped model that equal base or start with base-
func slugsWithBase(db *gorm.DB, base string) ([]string, error) {
	var slugs []string
	err := db.Where("slug = ? OR slug LIKE ?", base, base+"-%").Pluck("slug", &slugs).Error
	return slugs, err
}
