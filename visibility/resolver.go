package visibility

import (
	"formbuilder/metrics"
	"formbuilder/repository"
	"formbuilder/utils"

	"github.com/prometheus/client_golang/prometheus"
)

type triggerMatcher func(option *repository.Option, answer AnswerValue) bool

// Only choice-like parents can reveal sub-questions. Every other parent type
// never fires a conditional.
var triggerMatchers = map[repository.QuestionType]triggerMatcher{
	repository.YesNo:        matchLabel,
	repository.SingleChoice: matchOptionId,
	repository.MultiChoice:  containsOptionId,
}

func matchLabel(option *repository.Option, answer AnswerValue) bool {
	text, ok := answer.Text()
	return ok && text == option.Label
}

func matchOptionId(option *repository.Option, answer AnswerValue) bool {
	id, ok := answer.Text()
	return ok && id == option.Id
}

func containsOptionId(option *repository.Option, answer AnswerValue) bool {
	return answer.Contains(option.Id)
}

// IsVisible decides whether a question is shown for the given answers.
// Top-level questions are always visible and so are sub-questions nothing
// reveals. Otherwise the question is visible when any of its conditionals
// fires. A conditional whose option or parent question cannot be found does
// not fire.
func IsVisible(question *repository.Question, answers Answers, lookup Lookup) bool {
	if !question.IsSubQuestion {
		return true
	}
	conditionals := lookup.ConditionalsFor(question.Id)
	if len(conditionals) == 0 {
		return true
	}
	return utils.Any(conditionals, func(conditional *repository.Conditional) bool {
		return fires(conditional, answers, lookup)
	})
}

func fires(conditional *repository.Conditional, answers Answers, lookup Lookup) bool {
	option, ok := lookup.Option(conditional.RevealingOptionId)
	if !ok {
		return false
	}
	parent, ok := lookup.Question(option.QuestionId)
	if !ok {
		return false
	}
	matcher, ok := triggerMatchers[parent.Type]
	if !ok {
		return false
	}
	return matcher(option, answers[parent.Id])
}

// VisibleQuestions keeps the visible questions, preserving their order.
// Each question is evaluated against the raw answers on its own, so a
// question revealed by a hidden parent is still shown.
func VisibleQuestions(questions []*repository.Question, answers Answers, lookup Lookup) []*repository.Question {
	timer := prometheus.NewTimer(metrics.VisibilityEvaluationDuration)
	defer timer.ObserveDuration()
	metrics.VisibilityEvaluationsTotal.Add(float64(len(questions)))
	return utils.Filter(questions, func(question *repository.Question) bool {
		return IsVisible(question, answers, lookup)
	})
}
