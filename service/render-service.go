package service

import (
	"encoding/json"
	"errors"
	"formbuilder/app_error"
	"formbuilder/repository"
	"formbuilder/utils"
	"formbuilder/visibility"
	"log"

	"github.com/gin-contrib/cache/persistence"
	"gorm.io/gorm"
)

// FormSnapshot is everything needed to render one form.
type FormSnapshot struct {
	Form *repository.Form
	*visibility.Snapshot
}

type RenderedQuestion struct {
	Question *repository.Question
	Options  []*repository.Option
	// options whose free text input is shown because they are selected
	OpenOptionIds []string
}

type RenderService struct {
	form_repository        *repository.FormRepository
	question_repository    *repository.QuestionRepository
	option_repository      *repository.OptionRepository
	conditional_repository *repository.ConditionalRepository
	changes                *ChangeTracker
}

func NewRenderService(db *gorm.DB, changes *ChangeTracker) *RenderService {
	return &RenderService{
		form_repository:        repository.NewFormRepository(db),
		question_repository:    repository.NewQuestionRepository(db),
		option_repository:      repository.NewOptionRepository(db),
		conditional_repository: repository.NewConditionalRepository(db),
		changes:                changes,
	}
}

func snapshotKey(formId string) string {
	return "snapshot:" + formId
}

// GetSnapshot loads the questions of the form together with their options and
// the conditionals revealing them.
func (e *RenderService) GetSnapshot(formId string) (*FormSnapshot, error) {
	generation := e.changes.Generation()
	var cached *FormSnapshot
	err := e.changes.Snapshots().Get(snapshotKey(formId), &cached)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil && !errors.Is(err, persistence.ErrCacheMiss) {
		log.Printf("Error reading snapshot cache: %v", err)
	}

	form, err := e.form_repository.GetFormById(formId)
	if err != nil {
		return nil, err
	}
	questions, err := e.question_repository.GetQuestionsByFormId(formId)
	if err != nil {
		return nil, err
	}
	questionIds := utils.Map(questions, func(q *repository.Question) string { return q.Id })
	options, err := e.option_repository.GetOptionsByQuestionIds(questionIds)
	if err != nil {
		return nil, err
	}
	conditionals, err := e.conditional_repository.GetConditionalsByRevealedQuestions(questionIds)
	if err != nil {
		return nil, err
	}
	snapshot := &FormSnapshot{
		Form:     form,
		Snapshot: visibility.NewSnapshot(questions, options, conditionals),
	}
	e.changes.StoreSnapshot(snapshotKey(formId), snapshot, generation)
	return snapshot, nil
}

func decodeAnswers(raw map[string]json.RawMessage, snapshot *FormSnapshot) (visibility.Answers, error) {
	answers, err := visibility.DecodeAnswers(raw, snapshot)
	if err != nil {
		return nil, app_error.BadRequest(err)
	}
	return answers, nil
}

// Render returns the visible questions of the form in order, each with its
// ordered options.
func (e *RenderService) Render(formId string, raw map[string]json.RawMessage) ([]*RenderedQuestion, error) {
	snapshot, err := e.GetSnapshot(formId)
	if err != nil {
		return nil, err
	}
	answers, err := decodeAnswers(raw, snapshot)
	if err != nil {
		return nil, err
	}
	visible := visibility.VisibleQuestions(snapshot.Questions(), answers, snapshot)
	return utils.Map(visible, func(question *repository.Question) *RenderedQuestion {
		options := snapshot.OptionsOf(question.Id)
		selected := selectedOptionIds(question, answers[question.Id], options)
		open := utils.Filter(options, func(o *repository.Option) bool {
			return o.AllowsFreeText && utils.Contains(selected, o.Id)
		})
		return &RenderedQuestion{
			Question:      question,
			Options:       options,
			OpenOptionIds: utils.Map(open, func(o *repository.Option) string { return o.Id }),
		}
	}), nil
}

func (e *RenderService) IsQuestionVisible(questionId string, raw map[string]json.RawMessage) (bool, error) {
	question, err := e.question_repository.GetQuestionById(questionId)
	if err != nil {
		return false, err
	}
	snapshot, err := e.GetSnapshot(question.FormId)
	if err != nil {
		return false, err
	}
	answers, err := decodeAnswers(raw, snapshot)
	if err != nil {
		return false, err
	}
	return visibility.IsVisible(question, answers, snapshot), nil
}

// selectedOptionIds resolves an answer to the options it picks. Yes/no
// answers pick the option carrying the answered label.
func selectedOptionIds(question *repository.Question, answer visibility.AnswerValue, options []*repository.Option) []string {
	if question.Type == repository.YesNo {
		label, ok := answer.Text()
		if !ok {
			return nil
		}
		matching := utils.Filter(options, func(o *repository.Option) bool { return o.Label == label })
		return utils.Map(matching, func(o *repository.Option) string { return o.Id })
	}
	return answer.OptionIds()
}
