package repository

import (
	"time"

	"gorm.io/gorm"
)

// Conditional makes RevealedQuestionId visible when RevealingOptionId is the
// answer to the option's question.
type Conditional struct {
	Id                 string    `gorm:"primaryKey;size:64"`
	RevealingOptionId  string    `gorm:"not null;index;size:64"`
	RevealedQuestionId string    `gorm:"not null;index;size:64"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

type ConditionalRepository struct {
	DB *gorm.DB
}

func NewConditionalRepository(db *gorm.DB) *ConditionalRepository {
	return &ConditionalRepository{DB: db}
}

func (r *ConditionalRepository) GetAllConditionals() ([]*Conditional, error) {
	defer timeQuery("GetAllConditionals")()
	conditionals := make([]*Conditional, 0)
	result := r.DB.Order("created_at ASC, id ASC").Find(&conditionals)
	if result.Error != nil {
		return nil, result.Error
	}
	return conditionals, nil
}

func (r *ConditionalRepository) GetConditionalById(conditionalId string) (*Conditional, error) {
	defer timeQuery("GetConditionalById")()
	var conditional Conditional
	result := r.DB.First(&conditional, "id = ?", conditionalId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &conditional, nil
}

func (r *ConditionalRepository) GetConditionalsByRevealedQuestion(questionId string) ([]*Conditional, error) {
	defer timeQuery("GetConditionalsByRevealedQuestion")()
	conditionals := make([]*Conditional, 0)
	result := r.DB.Where("revealed_question_id = ?", questionId).Order("created_at ASC, id ASC").Find(&conditionals)
	if result.Error != nil {
		return nil, result.Error
	}
	return conditionals, nil
}

func (r *ConditionalRepository) GetConditionalsByRevealedQuestions(questionIds []string) ([]*Conditional, error) {
	defer timeQuery("GetConditionalsByRevealedQuestions")()
	conditionals := make([]*Conditional, 0)
	if len(questionIds) == 0 {
		return conditionals, nil
	}
	result := r.DB.Where("revealed_question_id IN ?", questionIds).Order("created_at ASC, id ASC").Find(&conditionals)
	if result.Error != nil {
		return nil, result.Error
	}
	return conditionals, nil
}

func (r *ConditionalRepository) GetConditionalsByRevealingOption(optionId string) ([]*Conditional, error) {
	defer timeQuery("GetConditionalsByRevealingOption")()
	conditionals := make([]*Conditional, 0)
	result := r.DB.Where("revealing_option_id = ?", optionId).Order("created_at ASC, id ASC").Find(&conditionals)
	if result.Error != nil {
		return nil, result.Error
	}
	return conditionals, nil
}

func (r *ConditionalRepository) SaveConditional(conditional *Conditional) (*Conditional, error) {
	defer timeQuery("SaveConditional")()
	result := r.DB.Save(conditional)
	if result.Error != nil {
		return nil, result.Error
	}
	return conditional, nil
}

func (r *ConditionalRepository) DeleteConditional(conditionalId string) error {
	defer timeQuery("DeleteConditional")()
	result := r.DB.Delete(&Conditional{}, "id = ?", conditionalId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
