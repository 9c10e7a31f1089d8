package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"formbuilder/app_error"
	"formbuilder/metrics"
	"formbuilder/repository"
	"formbuilder/utils"
	"formbuilder/visibility"
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrValidation = errors.New("submission is invalid")

type SubmissionService struct {
	submission_repository *repository.SubmissionRepository
	form_repository       *repository.FormRepository
	render_service        *RenderService
	changes               *ChangeTracker
}

func NewSubmissionService(db *gorm.DB, renderService *RenderService, changes *ChangeTracker) *SubmissionService {
	return &SubmissionService{
		submission_repository: repository.NewSubmissionRepository(db),
		form_repository:       repository.NewFormRepository(db),
		render_service:        renderService,
		changes:               changes,
	}
}

func (e *SubmissionService) GetSubmissionsByFormId(formId string) ([]*repository.Submission, error) {
	if _, err := e.form_repository.GetFormById(formId); err != nil {
		return nil, err
	}
	return e.submission_repository.GetSubmissionsByFormId(formId)
}

func (e *SubmissionService) GetSubmissionById(submissionId string) (*repository.Submission, error) {
	return e.submission_repository.GetSubmissionById(submissionId)
}

// Submit validates the answers against the visible questions of the form and
// stores them. Answers to hidden questions are dropped. Open answers are keyed
// by the option whose free text input they fill.
func (e *SubmissionService) Submit(formId string, raw map[string]json.RawMessage, openAnswers map[string]string) (*repository.Submission, error) {
	snapshot, err := e.render_service.GetSnapshot(formId)
	if err != nil {
		return nil, err
	}
	answers, open, err := validateSubmission(snapshot, raw, openAnswers)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	answersJson, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	openJson, err := json.Marshal(open)
	if err != nil {
		return nil, err
	}
	submission, err := e.submission_repository.SaveSubmission(&repository.Submission{
		Id:          repository.NewId("sub"),
		FormId:      formId,
		Answers:     datatypes.JSON(answersJson),
		OpenAnswers: datatypes.JSON(openJson),
		SubmittedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	e.changes.Publish(EntitySubmission, ActionCreated, submission.Id)
	return submission, nil
}

func validateSubmission(snapshot *FormSnapshot, raw map[string]json.RawMessage, openAnswers map[string]string) (visibility.Answers, map[string]string, error) {
	errs := make([]error, 0)
	for questionId := range raw {
		if _, ok := snapshot.Question(questionId); !ok {
			errs = append(errs, fmt.Errorf("question %s is not part of form %s", questionId, snapshot.Form.Id))
		}
	}
	if len(errs) > 0 {
		return nil, nil, invalid(errs)
	}
	answers, err := visibility.DecodeAnswers(raw, snapshot)
	if err != nil {
		return nil, nil, invalid([]error{err})
	}

	kept := make(visibility.Answers)
	selected := make(map[string]bool)
	for _, question := range visibility.VisibleQuestions(snapshot.Questions(), answers, snapshot) {
		answer, ok := answers[question.Id]
		if !ok || answer.IsEmpty() {
			if question.Required {
				errs = append(errs, fmt.Errorf("question %s is required", question.Id))
			}
			continue
		}
		options := snapshot.OptionsOf(question.Id)
		if err := validateAnswer(question, answer, options); err != nil {
			errs = append(errs, fmt.Errorf("question %s: %w", question.Id, err))
			continue
		}
		kept[question.Id] = answer
		for _, optionId := range selectedOptionIds(question, answer, options) {
			selected[optionId] = true
		}
	}

	open := make(map[string]string)
	for optionId, text := range openAnswers {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		option, ok := snapshot.Option(optionId)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("option %s is not part of form %s", optionId, snapshot.Form.Id))
		case !option.AllowsFreeText:
			errs = append(errs, fmt.Errorf("option %s does not allow free text", optionId))
		case !selected[optionId]:
			errs = append(errs, fmt.Errorf("option %s is not selected", optionId))
		default:
			open[optionId] = text
		}
	}
	if len(errs) > 0 {
		return nil, nil, invalid(errs)
	}
	return kept, open, nil
}

func invalid(errs []error) error {
	return app_error.BadRequest(fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...)))
}

func validateAnswer(question *repository.Question, answer visibility.AnswerValue, options []*repository.Option) error {
	optionIds := utils.Map(options, func(o *repository.Option) string { return o.Id })
	switch question.Type {
	case repository.SingleChoice, repository.MultiChoice:
		for _, id := range answer.OptionIds() {
			if !utils.Contains(optionIds, id) {
				return fmt.Errorf("unknown option %s", id)
			}
		}
	case repository.YesNo:
		label, _ := answer.Text()
		labels := utils.Map(options, func(o *repository.Option) string { return o.Label })
		if len(labels) > 0 && !utils.Contains(labels, label) {
			return fmt.Errorf("answer %q is not one of %s", label, strings.Join(labels, ", "))
		}
	case repository.Integer:
		number, _ := answer.Number()
		if number != math.Trunc(number) {
			return fmt.Errorf("%v is not a whole number", number)
		}
	case repository.Decimal2dp:
		number, _ := answer.Number()
		if math.Abs(number*100-math.Round(number*100)) > 1e-6 {
			return fmt.Errorf("%v has more than two decimal places", number)
		}
	}
	return nil
}
