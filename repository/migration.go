package repository

import (
	"log"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Form{}, &Question{}, &Option{}, &Conditional{}, &Submission{}); err != nil {
		return err
	}
	return MigrateLegacyQuestionTypes(db)
}

// MigrateLegacyQuestionTypes rewrites question rows still carrying the labels
// of the first form builder version.
func MigrateLegacyQuestionTypes(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for legacy, questionType := range LegacyQuestionTypes {
			result := tx.Model(&Question{}).Where("type = ?", legacy).Update("type", questionType)
			if result.Error != nil {
				log.Printf("Error migrating question type %s: %v", legacy, result.Error)
				return result.Error
			}
			if result.RowsAffected > 0 {
				log.Printf("Migrated %d questions from %s to %s", result.RowsAffected, legacy, questionType)
			}
		}
		return nil
	})
}
