// Package manuscript defines the core domain types for catalog entries.
package manuscript

// Entry represents one academic manuscript in the catalog.
type Entry struct {
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Affiliations []string `json:"affiliations"`
	Abstract     string   `json:"abstract"`

	// Details holds the structured payload extracted from the manuscript
	// text, normally produced by a language model from the prompt template.
	Details *Details `json:"details,omitempty"`
}

// Details is the structured sub-record payload attached to an entry.
type Details struct {
	Methods  []Method  `json:"methods,omitempty"`
	Datasets []Dataset `json:"datasets,omitempty"`
	Metrics  []Metric  `json:"metrics,omitempty"`
}

// Method model types.
const (
	ModelTypeLLM   = "LLM"
	ModelTypeVLM   = "VLM"
	ModelTypeImage = "Image"
)

// Method describes a model used or introduced by the manuscript.
type Method struct {
	ModelName     string `json:"model_name"`
	Type          string `json:"type"` // LLM, VLM, Image
	EmbeddingSize int    `json:"embedding_size,omitempty"`
	Backbone      string `json:"backbone,omitempty"`
	Parameters    int    `json:"parameters,omitempty"`
}

// Dataset usage values.
const (
	UsageTraining   = "training"
	UsageFinetuning = "finetuning"
	UsageEvaluation = "evaluation"
)

// Dataset sample types.
const (
	SampleTypeQAPair     = "QA pair"
	SampleTypeLongText   = "long text"
	SampleTypeMedicalEHR = "medical EHR"
	SampleTypeReport     = "report"
	SampleTypeOther      = "other"
)

// Dataset describes a dataset the manuscript trains or evaluates on.
type Dataset struct {
	Name       string `json:"name"`
	Usage      string `json:"usage"` // training, finetuning, evaluation
	Focus      string `json:"focus"`
	SampleType string `json:"sample_type"`
	IsPublic   bool   `json:"is_public"`
	NumSamples int    `json:"num_samples,omitempty"`
}

// Metric evaluation types.
const (
	EvalTypeMultipleChoice = "multiple choice"
	EvalTypeQA             = "QA"
	EvalTypeOther          = "other"
)

// Metric describes one reported evaluation result. ModelName refers to a
// method by name; it is a cross-reference, not an ownership relation.
type Metric struct {
	Name           string  `json:"name"`
	EvaluationType string  `json:"evaluation_type"`
	Value          float64 `json:"value"`
	Description    string  `json:"description"`
	ModelName      string  `json:"model_name"`
}

// HasDetails reports whether the entry carries a structured payload.
func (e Entry) HasDetails() bool {
	return e.Details != nil
}

// Clone returns a deep copy of the entry. Callers that hand entries to
// presentation layers use this to keep the store's state unaliased.
func (e Entry) Clone() Entry {
	out := e
	out.Authors = append([]string(nil), e.Authors...)
	out.Affiliations = append([]string(nil), e.Affiliations...)
	if e.Details != nil {
		d := Details{
			Methods:  append([]Method(nil), e.Details.Methods...),
			Datasets: append([]Dataset(nil), e.Details.Datasets...),
			Metrics:  append([]Metric(nil), e.Details.Metrics...),
		}
		out.Details = &d
	}
	return out
}
