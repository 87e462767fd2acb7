// internal/esg/model/answer.go
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerKind discriminates the AnswerValue variant.
type AnswerKind int

const (
	AnswerEmpty AnswerKind = iota
	AnswerBool
	AnswerText
)

// AnswerValue is the tagged value of a questionnaire answer: a boolean, a
// free-text response, or empty (unanswered). Keeping this a closed variant
// makes the scoring rule an exhaustive switch instead of a type probe on
// interface{}.
type AnswerValue struct {
	kind AnswerKind
	b    bool
	text string
}

// BoolAnswer wraps a yes/no response.
func BoolAnswer(v bool) AnswerValue {
	return AnswerValue{kind: AnswerBool, b: v}
}

// TextAnswer wraps a free-text response. An all-whitespace or empty string
// is normalized to the empty variant.
func TextAnswer(s string) AnswerValue {
	if strings.TrimSpace(s) == "" {
		return AnswerValue{kind: AnswerEmpty}
	}
	return AnswerValue{kind: AnswerText, text: s}
}

// EmptyAnswer is an unanswered question.
func EmptyAnswer() AnswerValue {
	return AnswerValue{kind: AnswerEmpty}
}

// Kind returns the variant tag.
func (a AnswerValue) Kind() AnswerKind { return a.kind }

// Bool returns the boolean value; false unless Kind() == AnswerBool.
func (a AnswerValue) Bool() bool { return a.kind == AnswerBool && a.b }

// Text returns the text value; empty unless Kind() == AnswerText.
func (a AnswerValue) Text() string {
	if a.kind != AnswerText {
		return ""
	}
	return a.text
}

// Answered reports whether the question was answered at all. A false
// boolean counts as answered; only the empty variant does not.
func (a AnswerValue) Answered() bool { return a.kind != AnswerEmpty }

// MarshalJSON encodes the variant as bool, string, or null.
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerBool:
		return json.Marshal(a.b)
	case AnswerText:
		return json.Marshal(a.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes bool, string, or null. Any other JSON shape is a
// contract error surfaced at the serialization boundary.
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*a = EmptyAnswer()
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = BoolAnswer(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = TextAnswer(s)
		return nil
	}

	return fmt.Errorf("answer must be a boolean, a string, or null, got %s", trimmed)
}
