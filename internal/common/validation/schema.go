// Package validation checks worker payloads against JSON Schemas before any
// engine runs. Schema failures are contract errors, distinct from the
// advisory data-quality issues the assessment validator reports.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// AssessmentInputSchema constrains the shape of the assessment payload
// carried in process variables. It gates structure only; value-level checks
// (plausibility, completeness) belong to the assessment validator.
const AssessmentInputSchema = `{
	"type": "object",
	"properties": {
		"company": {
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"sector": {"type": "string"},
				"employees": {"type": "integer"},
				"establishedYear": {"type": "integer"}
			}
		},
		"locations": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"totalFloorArea": {"type": "number"},
					"utilities": {
						"type": "object",
						"additionalProperties": {
							"type": "object",
							"properties": {
								"monthlyConsumption": {"type": "number"},
								"provider": {"type": "string"}
							}
						}
					}
				}
			}
		},
		"scopingAnswers": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"properties": {
					"question": {"type": "string"},
					"answer": {"type": ["boolean", "string", "null"]},
					"frameworks": {"type": "array", "items": {"type": "string"}},
					"category": {"type": "string"}
				}
			}
		},
		"tasks": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"title": {"type": "string"},
					"category": {"type": "string"},
					"status": {"type": "string"},
					"priority": {"type": "string"},
					"frameworks": {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"frameworks": {"type": "array", "items": {"type": "string"}}
	}
}`

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateAgainstSchema checks a decoded payload against a JSON Schema
// source string.
func ValidateAgainstSchema(payload map[string]interface{}, schemaJSON string) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out, nil
}

// ValidateAssessmentInput checks an assessment payload against the built-in
// input schema.
func ValidateAssessmentInput(payload map[string]interface{}) (*ValidationResult, error) {
	return ValidateAgainstSchema(payload, AssessmentInputSchema)
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}
