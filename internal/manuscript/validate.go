package manuscript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidDetails indicates a details payload that does not match the
// expected shape. Callers map it to a data-error exit code.
var ErrInvalidDetails = errors.New("invalid details payload")

// detailsSchema is the JSON Schema for the details payload. It mirrors the
// "fields" structure of the extraction prompt, so a response pasted from an
// LLM chat validates directly.
const detailsSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"methods": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["model_name", "type"],
				"additionalProperties": false,
				"properties": {
					"model_name": {"type": "string", "minLength": 1},
					"type": {"enum": ["LLM", "VLM", "Image"]},
					"embedding_size": {"type": "integer", "minimum": 0},
					"backbone": {"type": "string"},
					"parameters": {"type": "integer", "minimum": 0}
				}
			}
		},
		"datasets": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "usage"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"usage": {"enum": ["training", "finetuning", "evaluation"]},
					"focus": {"type": "string"},
					"sample_type": {"enum": ["QA pair", "long text", "medical EHR", "report", "other"]},
					"is_public": {"type": "boolean"},
					"num_samples": {"type": "integer", "minimum": 0}
				}
			}
		},
		"metrics": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"evaluation_type": {"enum": ["multiple choice", "QA", "other"]},
					"value": {"type": "number"},
					"description": {"type": "string"},
					"model_name": {"type": "string"}
				}
			}
		}
	}
}`

var detailsSchemaLoader = gojsonschema.NewStringLoader(detailsSchema)

// ValidateDetailsJSON checks a raw details payload against the schema.
// Returns an error wrapping ErrInvalidDetails listing every violation.
func ValidateDetailsJSON(data []byte) error {
	result, err := gojsonschema.Validate(detailsSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validating details: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDetails, strings.Join(problems, "; "))
}

// ParseDetails validates and decodes a raw details payload.
func ParseDetails(data []byte) (*Details, error) {
	if err := ValidateDetailsJSON(data); err != nil {
		return nil, err
	}

	var d Details
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing details: %w", err)
	}
	return &d, nil
}
