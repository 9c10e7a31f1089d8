package visibility

import (
	"formbuilder/repository"
	"formbuilder/utils"
)

// Lookup gives the resolver indexed access to the entities of a form.
type Lookup interface {
	Question(questionId string) (*repository.Question, bool)
	Option(optionId string) (*repository.Option, bool)
	ConditionalsFor(questionId string) []*repository.Conditional
}

// Snapshot is a read-only, indexed view over questions, options and
// conditionals. The slices it is built from must not be modified afterwards.
type Snapshot struct {
	questions         []*repository.Question
	questionsById     map[string]*repository.Question
	optionsById       map[string]*repository.Option
	optionsByQuestion map[string][]*repository.Option
	conditionals      map[string][]*repository.Conditional
}

func NewSnapshot(questions []*repository.Question, options []*repository.Option, conditionals []*repository.Conditional) *Snapshot {
	return &Snapshot{
		questions:         questions,
		questionsById:     utils.KeyBy(questions, func(q *repository.Question) string { return q.Id }),
		optionsById:       utils.KeyBy(options, func(o *repository.Option) string { return o.Id }),
		optionsByQuestion: utils.GroupBy(options, func(o *repository.Option) string { return o.QuestionId }),
		conditionals:      utils.GroupBy(conditionals, func(c *repository.Conditional) string { return c.RevealedQuestionId }),
	}
}

func (s *Snapshot) Question(questionId string) (*repository.Question, bool) {
	question, ok := s.questionsById[questionId]
	return question, ok
}

func (s *Snapshot) Option(optionId string) (*repository.Option, bool) {
	option, ok := s.optionsById[optionId]
	return option, ok
}

func (s *Snapshot) ConditionalsFor(questionId string) []*repository.Conditional {
	return s.conditionals[questionId]
}

// Questions returns the questions in the order the snapshot was built with.
func (s *Snapshot) Questions() []*repository.Question {
	return s.questions
}

func (s *Snapshot) OptionsOf(questionId string) []*repository.Option {
	return s.optionsByQuestion[questionId]
}
