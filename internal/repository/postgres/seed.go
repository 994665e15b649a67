package postgres

import (
	"github.com/systemdesignlab/content-api/internal/content"
	"github.com/systemdesignlab/content-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedIfEmpty inserts the bundled snapshot into any table that has no rows
// yet. Seed rows carry explicit ids and conflict-on-id is ignored, so
// running this twice never duplicates data. After seeding, the id sequence
// is advanced past the fixed ids so store-generated ids cannot collide with
// them.
func SeedIfEmpty(db *gorm.DB) error {
	var courseCount int64
	if err := db.Model(&domain.Course{}).Count(&courseCount).Error; err != nil {
		return err
	}
	if courseCount == 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(content.Courses()).Error; err != nil {
			return err
		}
		if err := resetIDSequence(db, "courses"); err != nil {
			return err
		}
	}

	var postCount int64
	if err := db.Model(&domain.BlogPost{}).Count(&postCount).Error; err != nil {
		return err
	}
	if postCount == 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(content.BlogPosts()).Error; err != nil {
			return err
		}
		if err := resetIDSequence(db, "blog_posts"); err != nil {
			return err
		}
	}

	return nil
}

// Inserting rows with explicit ids does not advance the backing sequence;
// without this, the first admin-created row would collide with a seed id.
func resetIDSequence(db *gorm.DB, table string) error {
	return db.Exec(
		"SELECT setval(pg_get_serial_sequence(?, 'id'), (SELECT COALESCE(MAX(id), 1) FROM "+table+"))",
		table,
	).Error
}
