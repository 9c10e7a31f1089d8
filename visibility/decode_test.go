package visibility

import (
	"encoding/json"
	"formbuilder/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnswerByType(t *testing.T) {
	cases := []struct {
		questionType repository.QuestionType
		raw          string
		kind         AnswerKind
	}{
		{repository.SingleChoice, `"o1"`, KindSingle},
		{repository.MultiChoice, `["o1","o2"]`, KindMulti},
		{repository.YesNo, `"Sim"`, KindText},
		{repository.FreeText, `"anything"`, KindText},
		{repository.Integer, `42`, KindNumber},
		{repository.Decimal2dp, `"3.14"`, KindNumber},
		{repository.Integer, `""`, KindAbsent},
		{repository.SingleChoice, `null`, KindAbsent},
	}
	for _, c := range cases {
		answer, err := DecodeAnswer(c.questionType, json.RawMessage(c.raw))
		require.NoError(t, err, c.raw)
		assert.Equal(t, c.kind, answer.Kind(), c.raw)
	}
}

func TestDecodeAnswerRejectsWrongShape(t *testing.T) {
	cases := []struct {
		questionType repository.QuestionType
		raw          string
	}{
		{repository.SingleChoice, `["o1"]`},
		{repository.MultiChoice, `"o1"`},
		{repository.YesNo, `true`},
		{repository.Integer, `"many"`},
		{repository.Decimal2dp, `[1]`},
	}
	for _, c := range cases {
		_, err := DecodeAnswer(c.questionType, json.RawMessage(c.raw))
		assert.ErrorIs(t, err, ErrAnswerShape, c.raw)
	}
}

func TestDecodeAnswersUsesLookupTypes(t *testing.T) {
	snapshot := NewSnapshot([]*repository.Question{
		question("single", repository.SingleChoice, false),
		question("text", repository.FreeText, false),
	}, nil, nil)

	answers, err := DecodeAnswers(map[string]json.RawMessage{
		"single":  json.RawMessage(`"o1"`),
		"text":    json.RawMessage(`"o1"`),
		"unknown": json.RawMessage(`["o1"]`),
		"cleared": json.RawMessage(`null`),
	}, snapshot)
	require.NoError(t, err)

	assert.Equal(t, KindSingle, answers["single"].Kind())
	assert.Equal(t, KindText, answers["text"].Kind())
	assert.True(t, answers["unknown"].Contains("o1"))
	_, ok := answers["cleared"]
	assert.False(t, ok)

	_, err = DecodeAnswers(map[string]json.RawMessage{"single": json.RawMessage(`1`)}, snapshot)
	assert.ErrorIs(t, err, ErrAnswerShape)
}

func TestAnswerValueAccessors(t *testing.T) {
	multi := MultiAnswer("o1", "o1", "o2")
	assert.Equal(t, []string{"o1", "o2"}, multi.OptionIds())
	_, ok := multi.Text()
	assert.False(t, ok)

	number, ok := NumberAnswer(2.5).Number()
	assert.True(t, ok)
	assert.Equal(t, 2.5, number)
	_, ok = NumberAnswer(2.5).Text()
	assert.False(t, ok)

	assert.True(t, AnswerValue{}.IsEmpty())
	assert.True(t, TextAnswer("").IsEmpty())
	assert.False(t, NumberAnswer(0).IsEmpty())

	encoded, err := json.Marshal(Answers{"a": multi, "b": SingleAnswer("o1"), "c": NumberAnswer(1.25)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":["o1","o2"],"b":"o1","c":1.25}`, string(encoded))
}
