package visibility

import (
	"formbuilder/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func question(id string, questionType repository.QuestionType, sub bool) *repository.Question {
	return &repository.Question{Id: id, FormId: "form-1", Type: questionType, IsSubQuestion: sub}
}

func option(id string, questionId string, label string) *repository.Option {
	return &repository.Option{Id: id, QuestionId: questionId, Label: label}
}

func conditional(optionId string, questionId string) *repository.Conditional {
	return &repository.Conditional{Id: "cond-" + optionId + "-" + questionId, RevealingOptionId: optionId, RevealedQuestionId: questionId}
}

func TestTopLevelQuestionIsAlwaysVisible(t *testing.T) {
	a := question("a", repository.SingleChoice, false)
	b := question("b", repository.FreeText, false)
	o1 := option("o1", "a", "Sim")
	// a conditional pointing at a top-level question is ignored
	snapshot := NewSnapshot([]*repository.Question{a, b}, []*repository.Option{o1}, []*repository.Conditional{conditional("o1", "b")})

	for _, answers := range []Answers{nil, {}, {"a": SingleAnswer("o2")}, {"a": NumberAnswer(3)}} {
		assert.True(t, IsVisible(a, answers, snapshot))
		assert.True(t, IsVisible(b, answers, snapshot))
	}
}

func TestSubQuestionWithoutConditionalsIsVisible(t *testing.T) {
	sub := question("sub", repository.FreeText, true)
	snapshot := NewSnapshot([]*repository.Question{sub}, nil, nil)
	assert.True(t, IsVisible(sub, Answers{}, snapshot))
	assert.True(t, IsVisible(sub, nil, snapshot))
}

func TestYesNoMatchesLabelExactly(t *testing.T) {
	parent := question("a", repository.YesNo, false)
	sub := question("b", repository.FreeText, true)
	snapshot := NewSnapshot(
		[]*repository.Question{parent, sub},
		[]*repository.Option{option("yes", "a", "Sim"), option("no", "a", "Não")},
		[]*repository.Conditional{conditional("yes", "b")},
	)

	assert.True(t, IsVisible(sub, Answers{"a": TextAnswer("Sim")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": TextAnswer("sim")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": TextAnswer("Não")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": TextAnswer("yes")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": MultiAnswer("Sim")}, snapshot))
}

func TestSingleChoiceMatchesOptionId(t *testing.T) {
	parent := question("a", repository.SingleChoice, false)
	sub := question("b", repository.FreeText, true)
	snapshot := NewSnapshot(
		[]*repository.Question{parent, sub},
		[]*repository.Option{option("o1", "a", "Sim"), option("o2", "a", "Não")},
		[]*repository.Conditional{conditional("o2", "b")},
	)

	assert.False(t, IsVisible(sub, Answers{"a": SingleAnswer("o1")}, snapshot))
	assert.True(t, IsVisible(sub, Answers{"a": SingleAnswer("o2")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": SingleAnswer("Não")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": MultiAnswer("o2")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{}, snapshot))
}

func TestMultiChoiceRequiresContainment(t *testing.T) {
	parent := question("a", repository.MultiChoice, false)
	sub := question("b", repository.FreeText, true)
	snapshot := NewSnapshot(
		[]*repository.Question{parent, sub},
		[]*repository.Option{option("o1", "a", "Red"), option("o2", "a", "Blue")},
		[]*repository.Conditional{conditional("o2", "b")},
	)

	assert.True(t, IsVisible(sub, Answers{"a": MultiAnswer("o1", "o2")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": MultiAnswer("o1")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": MultiAnswer()}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": SingleAnswer("o2")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{}, snapshot))
}

func TestOpenEndedParentsNeverFire(t *testing.T) {
	for _, parentType := range []repository.QuestionType{repository.FreeText, repository.Integer, repository.Decimal2dp} {
		parent := question("a", parentType, false)
		sub := question("b", repository.FreeText, true)
		snapshot := NewSnapshot(
			[]*repository.Question{parent, sub},
			[]*repository.Option{option("o1", "a", "1")},
			[]*repository.Conditional{conditional("o1", "b")},
		)
		assert.False(t, IsVisible(sub, Answers{"a": TextAnswer("1")}, snapshot), parentType)
		assert.False(t, IsVisible(sub, Answers{"a": TextAnswer("o1")}, snapshot), parentType)
		assert.False(t, IsVisible(sub, Answers{"a": NumberAnswer(1)}, snapshot), parentType)
	}
}

func TestConditionalsAreOred(t *testing.T) {
	parent := question("a", repository.SingleChoice, false)
	sub := question("b", repository.FreeText, true)
	snapshot := NewSnapshot(
		[]*repository.Question{parent, sub},
		[]*repository.Option{option("o1", "a", "One"), option("o2", "a", "Two"), option("o3", "a", "Three")},
		[]*repository.Conditional{conditional("o1", "b"), conditional("o3", "b")},
	)

	assert.True(t, IsVisible(sub, Answers{"a": SingleAnswer("o1")}, snapshot))
	assert.True(t, IsVisible(sub, Answers{"a": SingleAnswer("o3")}, snapshot))
	assert.False(t, IsVisible(sub, Answers{"a": SingleAnswer("o2")}, snapshot))
}

func TestUnresolvedReferencesDoNotFire(t *testing.T) {
	parent := question("a", repository.SingleChoice, false)
	sub := question("b", repository.FreeText, true)
	snapshot := NewSnapshot(
		[]*repository.Question{parent, sub},
		[]*repository.Option{option("o1", "a", "One"), option("orphan", "gone", "Orphan")},
		[]*repository.Conditional{conditional("missing", "b"), conditional("orphan", "b")},
	)

	assert.NotPanics(t, func() {
		assert.False(t, IsVisible(sub, Answers{"a": SingleAnswer("missing"), "gone": SingleAnswer("orphan")}, snapshot))
	})

	withValid := NewSnapshot(
		[]*repository.Question{parent, sub},
		[]*repository.Option{option("o1", "a", "One")},
		[]*repository.Conditional{conditional("missing", "b"), conditional("o1", "b")},
	)
	assert.True(t, IsVisible(sub, Answers{"a": SingleAnswer("o1")}, withValid))
}

func TestChainedVisibilityIsEvaluatedIndependently(t *testing.T) {
	a := question("a", repository.SingleChoice, false)
	b := question("b", repository.SingleChoice, true)
	c := question("c", repository.FreeText, true)
	snapshot := NewSnapshot(
		[]*repository.Question{a, b, c},
		[]*repository.Option{option("a1", "a", "One"), option("a2", "a", "Two"), option("b1", "b", "One")},
		[]*repository.Conditional{conditional("a1", "b"), conditional("b1", "c")},
	)

	answers := Answers{"a": SingleAnswer("a2"), "b": SingleAnswer("b1")}
	assert.False(t, IsVisible(b, answers, snapshot))
	assert.True(t, IsVisible(c, answers, snapshot))
}

func TestVisibleQuestionsScenario(t *testing.T) {
	a := question("A", repository.SingleChoice, false)
	b := question("B", repository.FreeText, true)
	snapshot := NewSnapshot(
		[]*repository.Question{a, b},
		[]*repository.Option{option("o1", "A", "Sim"), option("o2", "A", "Não")},
		[]*repository.Conditional{conditional("o2", "B")},
	)

	visible := VisibleQuestions(snapshot.Questions(), Answers{"A": SingleAnswer("o1")}, snapshot)
	assert.Equal(t, []*repository.Question{a}, visible)

	visible = VisibleQuestions(snapshot.Questions(), Answers{"A": SingleAnswer("o2")}, snapshot)
	assert.Equal(t, []*repository.Question{a, b}, visible)
}
