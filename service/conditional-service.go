package service

import (
	"formbuilder/repository"

	"gorm.io/gorm"
)

type ConditionalService struct {
	conditional_repository *repository.ConditionalRepository
	option_repository      *repository.OptionRepository
	question_repository    *repository.QuestionRepository
	changes                *ChangeTracker
}

func NewConditionalService(db *gorm.DB, changes *ChangeTracker) *ConditionalService {
	return &ConditionalService{
		conditional_repository: repository.NewConditionalRepository(db),
		option_repository:      repository.NewOptionRepository(db),
		question_repository:    repository.NewQuestionRepository(db),
		changes:                changes,
	}
}

func (e *ConditionalService) GetAllConditionals() ([]*repository.Conditional, error) {
	return e.conditional_repository.GetAllConditionals()
}

func (e *ConditionalService) GetConditionalById(conditionalId string) (*repository.Conditional, error) {
	return e.conditional_repository.GetConditionalById(conditionalId)
}

// GetConditionalsByQuestionId returns the conditionals revealing the question.
func (e *ConditionalService) GetConditionalsByQuestionId(questionId string) ([]*repository.Conditional, error) {
	if _, err := e.question_repository.GetQuestionById(questionId); err != nil {
		return nil, err
	}
	return e.conditional_repository.GetConditionalsByRevealedQuestion(questionId)
}

// GetConditionalsByOptionId returns the conditionals the option triggers.
func (e *ConditionalService) GetConditionalsByOptionId(optionId string) ([]*repository.Conditional, error) {
	if _, err := e.option_repository.GetOptionById(optionId); err != nil {
		return nil, err
	}
	return e.conditional_repository.GetConditionalsByRevealingOption(optionId)
}

func (e *ConditionalService) CreateConditional(conditional *repository.Conditional) (*repository.Conditional, error) {
	if _, err := e.option_repository.GetOptionById(conditional.RevealingOptionId); err != nil {
		return nil, err
	}
	if _, err := e.question_repository.GetQuestionById(conditional.RevealedQuestionId); err != nil {
		return nil, err
	}
	conditional.Id = repository.NewId("cond")
	conditional, err := e.conditional_repository.SaveConditional(conditional)
	if err != nil {
		return nil, err
	}
	e.changes.Track(EntityConditional, ActionCreated, conditional.Id)
	return conditional, nil
}

func (e *ConditionalService) DeleteConditional(conditionalId string) error {
	if err := e.conditional_repository.DeleteConditional(conditionalId); err != nil {
		return err
	}
	e.changes.Track(EntityConditional, ActionDeleted, conditionalId)
	return nil
}
