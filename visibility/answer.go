package visibility

import (
	"encoding/json"
	"formbuilder/utils"
)

type AnswerKind int

const (
	KindAbsent AnswerKind = iota
	KindSingle
	KindMulti
	KindText
	KindNumber
)

func (k AnswerKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	}
	return "absent"
}

// AnswerValue is the answer given to one question. The zero value is an
// absent answer.
type AnswerValue struct {
	kind   AnswerKind
	text   string
	ids    []string
	number float64
}

// Answers maps question ids to their current answer.
type Answers map[string]AnswerValue

// SingleAnswer is a selected option id.
func SingleAnswer(optionId string) AnswerValue {
	return AnswerValue{kind: KindSingle, text: optionId}
}

// MultiAnswer is a set of selected option ids.
func MultiAnswer(optionIds ...string) AnswerValue {
	ids := make([]string, 0, len(optionIds))
	for _, id := range optionIds {
		if !utils.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return AnswerValue{kind: KindMulti, ids: ids}
}

// TextAnswer is a free string, also used for yes/no labels.
func TextAnswer(text string) AnswerValue {
	return AnswerValue{kind: KindText, text: text}
}

func NumberAnswer(number float64) AnswerValue {
	return AnswerValue{kind: KindNumber, number: number}
}

func (a AnswerValue) Kind() AnswerKind {
	return a.kind
}

// Text returns the string carried by single and text answers.
func (a AnswerValue) Text() (string, bool) {
	if a.kind == KindSingle || a.kind == KindText {
		return a.text, true
	}
	return "", false
}

// Contains reports whether a multi answer includes the option id.
func (a AnswerValue) Contains(optionId string) bool {
	return a.kind == KindMulti && utils.Contains(a.ids, optionId)
}

// OptionIds returns the option ids a single or multi answer selected.
func (a AnswerValue) OptionIds() []string {
	switch a.kind {
	case KindSingle:
		return []string{a.text}
	case KindMulti:
		return append([]string(nil), a.ids...)
	}
	return nil
}

func (a AnswerValue) Number() (float64, bool) {
	return a.number, a.kind == KindNumber
}

// IsEmpty is true for absent answers, blank strings and empty selections.
func (a AnswerValue) IsEmpty() bool {
	switch a.kind {
	case KindSingle, KindText:
		return a.text == ""
	case KindMulti:
		return len(a.ids) == 0
	case KindNumber:
		return false
	}
	return true
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case KindSingle, KindText:
		return json.Marshal(a.text)
	case KindMulti:
		return json.Marshal(a.ids)
	case KindNumber:
		return json.Marshal(a.number)
	}
	return []byte("null"), nil
}
