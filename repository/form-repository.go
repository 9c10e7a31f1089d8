package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Form struct {
	Id          string    `gorm:"primaryKey;size:64"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Order       int       `gorm:"column:position;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// NewId returns an opaque identifier such as "form-5c0f...".
func NewId(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

type FormRepository struct {
	DB *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{DB: db}
}

func (r *FormRepository) GetAllForms() ([]*Form, error) {
	defer timeQuery("GetAllForms")()
	forms := make([]*Form, 0)
	result := r.DB.Order("position ASC, created_at ASC, id ASC").Find(&forms)
	if result.Error != nil {
		return nil, result.Error
	}
	return forms, nil
}

func (r *FormRepository) GetFormById(formId string) (*Form, error) {
	defer timeQuery("GetFormById")()
	var form Form
	result := r.DB.First(&form, "id = ?", formId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &form, nil
}

func (r *FormRepository) SaveForm(form *Form) (*Form, error) {
	defer timeQuery("SaveForm")()
	result := r.DB.Save(form)
	if result.Error != nil {
		return nil, result.Error
	}
	return form, nil
}

// DeleteForm removes the form together with its questions, their options and
// every conditional that points at one of those questions or options.
func (r *FormRepository) DeleteForm(formId string) error {
	defer timeQuery("DeleteForm")()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIds []string
		if err := tx.Model(&Question{}).Where("form_id = ?", formId).Pluck("id", &questionIds).Error; err != nil {
			return err
		}
		result := tx.Delete(&Form{}, "id = ?", formId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if len(questionIds) == 0 {
			return nil
		}
		if err := tx.Where("id IN ?", questionIds).Delete(&Question{}).Error; err != nil {
			return err
		}
		return deleteQuestionChildren(tx, questionIds)
	})
}

type OrphanCounts struct {
	Questions    int64
	Options      int64
	Conditionals int64
}

// DeleteOrphans removes rows whose parent no longer exists: questions without
// a form, options without a question and conditionals missing either end.
func (r *FormRepository) DeleteOrphans() (*OrphanCounts, error) {
	defer timeQuery("DeleteOrphans")()
	counts := &OrphanCounts{}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("form_id NOT IN (?)", tx.Model(&Form{}).Select("id")).Delete(&Question{})
		if result.Error != nil {
			return result.Error
		}
		counts.Questions = result.RowsAffected
		result = tx.Where("question_id NOT IN (?)", tx.Model(&Question{}).Select("id")).Delete(&Option{})
		if result.Error != nil {
			return result.Error
		}
		counts.Options = result.RowsAffected
		result = tx.Where("revealing_option_id NOT IN (?)", tx.Model(&Option{}).Select("id")).
			Or("revealed_question_id NOT IN (?)", tx.Model(&Question{}).Select("id")).
			Delete(&Conditional{})
		if result.Error != nil {
			return result.Error
		}
		counts.Conditionals = result.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
