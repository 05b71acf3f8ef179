package scope

import "gorm.io/gorm"

// OrderByUpdatedDesc lists the most recently touched rows first. The id
// tiebreak keeps ordering stable when timestamps collide.
func OrderByUpdatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC").Order("id DESC")
}
