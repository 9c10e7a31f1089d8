package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	YesNo        QuestionType = "yes_no"
	MultiChoice  QuestionType = "multi_choice"
	SingleChoice QuestionType = "single_choice"
	FreeText     QuestionType = "free_text"
	Integer      QuestionType = "integer"
	Decimal2dp   QuestionType = "decimal_2dp"
)

var QuestionTypes = []QuestionType{YesNo, MultiChoice, SingleChoice, FreeText, Integer, Decimal2dp}

// LegacyQuestionTypes maps the labels used by the first version of the form
// builder onto the current question types.
var LegacyQuestionTypes = map[string]QuestionType{
	"Sim_Nao":                        YesNo,
	"multipla_escolha":               MultiChoice,
	"unica_escolha":                  SingleChoice,
	"texto_livre":                    FreeText,
	"Inteiro":                        Integer,
	"Numero_com_duas_casas_decimais": Decimal2dp,
}

func ParseQuestionType(value string) (QuestionType, error) {
	for _, questionType := range QuestionTypes {
		if string(questionType) == value {
			return questionType, nil
		}
	}
	if questionType, ok := LegacyQuestionTypes[value]; ok {
		return questionType, nil
	}
	return "", fmt.Errorf("unknown question type %q", value)
}

// HasOptions reports whether answers to this type are picked from options.
func (t QuestionType) HasOptions() bool {
	return t == SingleChoice || t == MultiChoice || t == YesNo
}

type Question struct {
	Id            string       `gorm:"primaryKey;size:64"`
	FormId        string       `gorm:"not null;index;size:64"`
	Title         string       `gorm:"not null"`
	Code          string       `gorm:"not null"`
	GuidanceText  *string      `gorm:"null"`
	Order         int          `gorm:"column:position;not null"`
	Required      bool         `gorm:"not null"`
	IsSubQuestion bool         `gorm:"not null"`
	Type          QuestionType `gorm:"not null;size:32"`
	CreatedAt     time.Time    `gorm:"autoCreateTime"`
}

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) GetAllQuestions() ([]*Question, error) {
	defer timeQuery("GetAllQuestions")()
	questions := make([]*Question, 0)
	result := r.DB.Order("position ASC, created_at ASC, id ASC").Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}
	return questions, nil
}

func (r *QuestionRepository) GetQuestionsByFormId(formId string) ([]*Question, error) {
	defer timeQuery("GetQuestionsByFormId")()
	questions := make([]*Question, 0)
	result := r.DB.Where("form_id = ?", formId).Order("position ASC, created_at ASC, id ASC").Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}
	return questions, nil
}

func (r *QuestionRepository) GetQuestionById(questionId string) (*Question, error) {
	defer timeQuery("GetQuestionById")()
	var question Question
	result := r.DB.First(&question, "id = ?", questionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &question, nil
}

func (r *QuestionRepository) SaveQuestion(question *Question) (*Question, error) {
	defer timeQuery("SaveQuestion")()
	result := r.DB.Save(question)
	if result.Error != nil {
		return nil, result.Error
	}
	return question, nil
}

// DeleteQuestion removes the question, its options and every conditional that
// reveals the question or is triggered by one of its options.
func (r *QuestionRepository) DeleteQuestion(questionId string) error {
	defer timeQuery("DeleteQuestion")()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Question{}, "id = ?", questionId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return deleteQuestionChildren(tx, []string{questionId})
	})
}

func deleteQuestionChildren(tx *gorm.DB, questionIds []string) error {
	var optionIds []string
	if err := tx.Model(&Option{}).Where("question_id IN ?", questionIds).Pluck("id", &optionIds).Error; err != nil {
		return err
	}
	conditionals := tx.Where("revealed_question_id IN ?", questionIds)
	if len(optionIds) > 0 {
		conditionals = conditionals.Or("revealing_option_id IN ?", optionIds)
	}
	if err := conditionals.Delete(&Conditional{}).Error; err != nil {
		return err
	}
	return tx.Where("question_id IN ?", questionIds).Delete(&Option{}).Error
}
