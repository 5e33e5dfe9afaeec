// Package prompt builds the extraction prompt handed to a language model.
// The "fields" structure matches the details schema, so the model's reply
// can be pasted straight into mscat add --details.
package prompt

import "encoding/json"

type template struct {
	Instruction string `json:"instruction"`
	Fields      fields `json:"fields"`
}

type fields struct {
	Methods  []methodField  `json:"methods"`
	Datasets []datasetField `json:"datasets"`
	Metrics  []metricField  `json:"metrics"`
}

type methodField struct {
	ModelName     string `json:"model_name"`
	Type          string `json:"type"`
	EmbeddingSize string `json:"embedding_size"`
	Backbone      string `json:"backbone"`
	Parameters    string `json:"parameters"`
}

type datasetField struct {
	Name       string `json:"name"`
	Usage      string `json:"usage"`
	Focus      string `json:"focus"`
	SampleType string `json:"sample_type"`
	IsPublic   string `json:"is_public"`
	NumSamples string `json:"num_samples"`
}

type metricField struct {
	Name           string `json:"name"`
	EvaluationType string `json:"evaluation_type"`
	Value          string `json:"value"`
	Description    string `json:"description"`
	ModelName      string `json:"model_name"`
}

// Template returns the JSON extraction prompt as an indented string.
func Template() string {
	t := template{
		Instruction: "Given the text of an academic manuscript, extract structured information.",
		Fields: fields{
			Methods: []methodField{{
				Type:          "LLM | VLM | Image",
				EmbeddingSize: "integer",
				Parameters:    "integer",
			}},
			Datasets: []datasetField{{
				Usage:      "training | finetuning | evaluation",
				Focus:      "main purpose or domain",
				SampleType: "QA pair | long text | medical EHR | report | other",
				IsPublic:   "true | false",
				NumSamples: "integer",
			}},
			Metrics: []metricField{{
				EvaluationType: "multiple choice | QA | other",
				Value:          "number",
				Description:    "how the metric is calculated",
				ModelName:      "associated model",
			}},
		},
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		// The template is a static value; marshaling cannot fail.
		panic(err)
	}
	return string(data)
}
