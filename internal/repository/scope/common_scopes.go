package scope

import "gorm.io/gorm"

// RecentlyUpdatedFirst is the default listing order for chat sessions.
func RecentlyUpdatedFirst(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC").Order("id DESC")
}

func OrderByNameAsc(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
