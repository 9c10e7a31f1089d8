package visibility

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"formbuilder/repository"
	"strconv"
	"strings"
)

var ErrAnswerShape = errors.New("answer does not match question type")

// DecodeAnswer reads a JSON answer in the shape expected for the question type.
// JSON null, and an empty string for numeric types, decode to an absent answer.
func DecodeAnswer(questionType repository.QuestionType, raw json.RawMessage) (AnswerValue, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return AnswerValue{}, nil
	}
	switch questionType {
	case repository.SingleChoice:
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return AnswerValue{}, shapeError(questionType, raw)
		}
		return SingleAnswer(id), nil
	case repository.MultiChoice:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return AnswerValue{}, shapeError(questionType, raw)
		}
		return MultiAnswer(ids...), nil
	case repository.YesNo, repository.FreeText:
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return AnswerValue{}, shapeError(questionType, raw)
		}
		return TextAnswer(text), nil
	case repository.Integer, repository.Decimal2dp:
		return decodeNumber(questionType, raw)
	}
	return decodeByShape(raw)
}

func decodeNumber(questionType repository.QuestionType, raw json.RawMessage) (AnswerValue, error) {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return NumberAnswer(number), nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return AnswerValue{}, shapeError(questionType, raw)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return AnswerValue{}, nil
	}
	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return AnswerValue{}, shapeError(questionType, raw)
	}
	return NumberAnswer(number), nil
}

func decodeByShape(raw json.RawMessage) (AnswerValue, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return AnswerValue{}, fmt.Errorf("%w: %v", ErrAnswerShape, err)
	}
	switch v := value.(type) {
	case string:
		return TextAnswer(v), nil
	case float64:
		return NumberAnswer(v), nil
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			id, ok := item.(string)
			if !ok {
				return AnswerValue{}, fmt.Errorf("%w: %s", ErrAnswerShape, raw)
			}
			ids = append(ids, id)
		}
		return MultiAnswer(ids...), nil
	}
	return AnswerValue{}, fmt.Errorf("%w: %s", ErrAnswerShape, raw)
}

func shapeError(questionType repository.QuestionType, raw json.RawMessage) error {
	return fmt.Errorf("%w: %s for %s", ErrAnswerShape, raw, questionType)
}

// DecodeAnswers decodes a raw answers object. Answers to questions the lookup
// does not know are decoded by their JSON shape.
func DecodeAnswers(raw map[string]json.RawMessage, lookup Lookup) (Answers, error) {
	answers := make(Answers, len(raw))
	errs := make([]error, 0)
	for questionId, value := range raw {
		var questionType repository.QuestionType
		if question, ok := lookup.Question(questionId); ok {
			questionType = question.Type
		}
		answer, err := DecodeAnswer(questionType, value)
		if err != nil {
			errs = append(errs, fmt.Errorf("question %s: %w", questionId, err))
			continue
		}
		if answer.Kind() != KindAbsent {
			answers[questionId] = answer
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return answers, nil
}
