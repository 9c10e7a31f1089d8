package service

import (
	"errors"
	"fmt"
	"formbuilder/app_error"
	"formbuilder/repository"
	"strings"

	"gorm.io/gorm"
)

var ErrInvalidQuestionType = errors.New("invalid question type")

// QuestionUpdate holds the fields to change. An empty GuidanceText clears it.
type QuestionUpdate struct {
	Title         *string
	Code          *string
	GuidanceText  *string
	Order         *int
	Required      *bool
	IsSubQuestion *bool
	Type          *string
}

type QuestionService struct {
	question_repository *repository.QuestionRepository
	form_repository     *repository.FormRepository
	changes             *ChangeTracker
}

func NewQuestionService(db *gorm.DB, changes *ChangeTracker) *QuestionService {
	return &QuestionService{
		question_repository: repository.NewQuestionRepository(db),
		form_repository:     repository.NewFormRepository(db),
		changes:             changes,
	}
}

func parseQuestionType(value string) (repository.QuestionType, error) {
	questionType, err := repository.ParseQuestionType(value)
	if err != nil {
		return "", app_error.BadRequest(fmt.Errorf("%w: %q", ErrInvalidQuestionType, value))
	}
	return questionType, nil
}

// guidanceText stores a blank text as no text, so updates can clear it.
func guidanceText(text *string) *string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil
	}
	return text
}

func (e *QuestionService) GetAllQuestions() ([]*repository.Question, error) {
	return e.question_repository.GetAllQuestions()
}

func (e *QuestionService) GetQuestionsByFormId(formId string) ([]*repository.Question, error) {
	if _, err := e.form_repository.GetFormById(formId); err != nil {
		return nil, err
	}
	return e.question_repository.GetQuestionsByFormId(formId)
}

func (e *QuestionService) GetQuestionById(questionId string) (*repository.Question, error) {
	return e.question_repository.GetQuestionById(questionId)
}

func (e *QuestionService) CreateQuestion(question *repository.Question) (*repository.Question, error) {
	questionType, err := parseQuestionType(string(question.Type))
	if err != nil {
		return nil, err
	}
	if _, err := e.form_repository.GetFormById(question.FormId); err != nil {
		return nil, err
	}
	question.Id = repository.NewId("q")
	question.Type = questionType
	question.GuidanceText = guidanceText(question.GuidanceText)
	question, err = e.question_repository.SaveQuestion(question)
	if err != nil {
		return nil, err
	}
	e.changes.Track(EntityQuestion, ActionCreated, question.Id)
	return question, nil
}

func (e *QuestionService) UpdateQuestion(questionId string, update *QuestionUpdate) (*repository.Question, error) {
	question, err := e.question_repository.GetQuestionById(questionId)
	if err != nil {
		return nil, err
	}
	if update.Type != nil {
		questionType, err := parseQuestionType(*update.Type)
		if err != nil {
			return nil, err
		}
		question.Type = questionType
	}
	if update.Title != nil {
		question.Title = *update.Title
	}
	if update.Code != nil {
		question.Code = *update.Code
	}
	if update.GuidanceText != nil {
		question.GuidanceText = guidanceText(update.GuidanceText)
	}
	if update.Order != nil {
		question.Order = *update.Order
	}
	if update.Required != nil {
		question.Required = *update.Required
	}
	if update.IsSubQuestion != nil {
		question.IsSubQuestion = *update.IsSubQuestion
	}
	question, err = e.question_repository.SaveQuestion(question)
	if err != nil {
		return nil, err
	}
	e.changes.Track(EntityQuestion, ActionUpdated, question.Id)
	return question, nil
}

func (e *QuestionService) DeleteQuestion(questionId string) error {
	if err := e.question_repository.DeleteQuestion(questionId); err != nil {
		return err
	}
	e.changes.Track(EntityQuestion, ActionDeleted, questionId)
	return nil
}
