package repository

import (
	"time"

	"gorm.io/gorm"
)

type Option struct {
	Id             string    `gorm:"primaryKey;size:64"`
	QuestionId     string    `gorm:"not null;index;size:64"`
	Label          string    `gorm:"not null"`
	Order          int       `gorm:"column:position;not null"`
	AllowsFreeText bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

type OptionRepository struct {
	DB *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{DB: db}
}

func (r *OptionRepository) GetAllOptions() ([]*Option, error) {
	defer timeQuery("GetAllOptions")()
	options := make([]*Option, 0)
	result := r.DB.Order("position ASC, created_at ASC, id ASC").Find(&options)
	if result.Error != nil {
		return nil, result.Error
	}
	return options, nil
}

func (r *OptionRepository) GetOptionsByQuestionId(questionId string) ([]*Option, error) {
	defer timeQuery("GetOptionsByQuestionId")()
	options := make([]*Option, 0)
	result := r.DB.Where("question_id = ?", questionId).Order("position ASC, created_at ASC, id ASC").Find(&options)
	if result.Error != nil {
		return nil, result.Error
	}
	return options, nil
}

func (r *OptionRepository) GetOptionsByQuestionIds(questionIds []string) ([]*Option, error) {
	defer timeQuery("GetOptionsByQuestionIds")()
	options := make([]*Option, 0)
	if len(questionIds) == 0 {
		return options, nil
	}
	result := r.DB.Where("question_id IN ?", questionIds).Order("position ASC, created_at ASC, id ASC").Find(&options)
	if result.Error != nil {
		return nil, result.Error
	}
	return options, nil
}

func (r *OptionRepository) GetOptionById(optionId string) (*Option, error) {
	defer timeQuery("GetOptionById")()
	var option Option
	result := r.DB.First(&option, "id = ?", optionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &option, nil
}

func (r *OptionRepository) SaveOption(option *Option) (*Option, error) {
	defer timeQuery("SaveOption")()
	result := r.DB.Save(option)
	if result.Error != nil {
		return nil, result.Error
	}
	return option, nil
}

// DeleteOption also removes the conditionals the option triggers.
func (r *OptionRepository) DeleteOption(optionId string) error {
	defer timeQuery("DeleteOption")()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Option{}, "id = ?", optionId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("revealing_option_id = ?", optionId).Delete(&Conditional{}).Error
	})
}
