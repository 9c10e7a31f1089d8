package service

import (
	"formbuilder/repository"

	"gorm.io/gorm"
)

type OptionUpdate struct {
	Label          *string
	Order          *int
	AllowsFreeText *bool
}

type OptionService struct {
	option_repository   *repository.OptionRepository
	question_repository *repository.QuestionRepository
	changes             *ChangeTracker
}

func NewOptionService(db *gorm.DB, changes *ChangeTracker) *OptionService {
	return &OptionService{
		option_repository:   repository.NewOptionRepository(db),
		question_repository: repository.NewQuestionRepository(db),
		changes:             changes,
	}
}

func (e *OptionService) GetAllOptions() ([]*repository.Option, error) {
	return e.option_repository.GetAllOptions()
}

func (e *OptionService) GetOptionById(optionId string) (*repository.Option, error) {
	return e.option_repository.GetOptionById(optionId)
}

func (e *OptionService) GetOptionsByQuestionId(questionId string) ([]*repository.Option, error) {
	if _, err := e.question_repository.GetQuestionById(questionId); err != nil {
		return nil, err
	}
	return e.option_repository.GetOptionsByQuestionId(questionId)
}

func (e *OptionService) CreateOption(option *repository.Option) (*repository.Option, error) {
	if _, err := e.question_repository.GetQuestionById(option.QuestionId); err != nil {
		return nil, err
	}
	option.Id = repository.NewId("opt")
	option, err := e.option_repository.SaveOption(option)
	if err != nil {
		return nil, err
	}
	e.changes.Track(EntityOption, ActionCreated, option.Id)
	return option, nil
}

func (e *OptionService) UpdateOption(optionId string, update *OptionUpdate) (*repository.Option, error) {
	option, err := e.option_repository.GetOptionById(optionId)
	if err != nil {
		return nil, err
	}
	if update.Label != nil {
		option.Label = *update.Label
	}
	if update.Order != nil {
		option.Order = *update.Order
	}
	if update.AllowsFreeText != nil {
		option.AllowsFreeText = *update.AllowsFreeText
	}
	option, err = e.option_repository.SaveOption(option)
	if err != nil {
		return nil, err
	}
	e.changes.Track(EntityOption, ActionUpdated, option.Id)
	return option, nil
}

func (e *OptionService) DeleteOption(optionId string) error {
	if err := e.option_repository.DeleteOption(optionId); err != nil {
		return err
	}
	e.changes.Track(EntityOption, ActionDeleted, optionId)
	return nil
}
