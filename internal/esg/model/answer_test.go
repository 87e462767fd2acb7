// internal/esg/model/answer_test.go
package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValue_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		answer   AnswerValue
		kind     AnswerKind
		answered bool
	}{
		{"true bool", BoolAnswer(true), AnswerBool, true},
		{"false bool is still answered", BoolAnswer(false), AnswerBool, true},
		{"text", TextAnswer("we recycle"), AnswerText, true},
		{"blank text folds to empty", TextAnswer("   "), AnswerEmpty, false},
		{"empty string folds to empty", TextAnswer(""), AnswerEmpty, false},
		{"explicit empty", EmptyAnswer(), AnswerEmpty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.answer.Kind())
			assert.Equal(t, tt.answered, tt.answer.Answered())
		})
	}
}

func TestAnswerValue_Accessors(t *testing.T) {
	assert.True(t, BoolAnswer(true).Bool())
	assert.False(t, BoolAnswer(false).Bool())
	assert.False(t, TextAnswer("yes").Bool())

	assert.Equal(t, "yes", TextAnswer("yes").Text())
	assert.Equal(t, "", BoolAnswer(true).Text())
	assert.Equal(t, "", EmptyAnswer().Text())
}

func TestAnswerValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		answer   AnswerValue
		expected string
	}{
		{"bool", BoolAnswer(true), "true"},
		{"false bool", BoolAnswer(false), "false"},
		{"text", TextAnswer("solar panels"), `"solar panels"`},
		{"empty", EmptyAnswer(), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestAnswerValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AnswerValue
	}{
		{"bool true", "true", BoolAnswer(true)},
		{"bool false", "false", BoolAnswer(false)},
		{"text", `"net zero by 2030"`, TextAnswer("net zero by 2030")},
		{"null", "null", EmptyAnswer()},
		{"empty string", `""`, EmptyAnswer()},
		{"whitespace string folds to empty", `"   "`, EmptyAnswer()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a AnswerValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestAnswerValue_UnmarshalJSONRejectsOtherShapes(t *testing.T) {
	for _, input := range []string{"42", "3.14", `{"value":true}`, "[true]"} {
		var a AnswerValue
		assert.Error(t, json.Unmarshal([]byte(input), &a), "input %s", input)
	}
}

func TestAnswerValue_RoundTripInsideRecord(t *testing.T) {
	record := AnswerRecord{
		Question:   "Do you have a waste policy?",
		Answer:     BoolAnswer(false),
		Frameworks: []string{"DST"},
		Category:   CategoryGovernance,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded AnswerRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
}
