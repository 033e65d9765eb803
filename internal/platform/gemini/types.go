package gemini

import "google.golang.org/genai"

// subjectPayload is the expected JSON shape of a subject-detection reply.
type subjectPayload struct {
	Subject string `json:"subject"`
	IsMath  bool   `json:"isMath"`
}

// itemsPayload is the expected JSON shape of an item-generation reply.
type itemsPayload struct {
	Items []itemPayload `json:"items"`
}

// itemPayload is a single question/answer pair in the API response.
type itemPayload struct {
	Problem string `json:"problem"`
	Answer  string `json:"answer"`
}

// subjectSchema constrains the subject-detection reply to exactly two
// fields: the academic subject and whether it requires mathematical
// notation.
var subjectSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"subject": {
			Type:        genai.TypeString,
			Description: "The academic school subject, in the language of the input",
		},
		"isMath": {
			Type:        genai.TypeBoolean,
			Description: "Whether the subject requires mathematical notation",
		},
	},
	Required: []string{"subject", "isMath"},
}

// itemsSchema constrains the item-generation reply to an object holding an
// array of problem/answer pairs.
var itemsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"items": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"problem": {Type: genai.TypeString},
					"answer":  {Type: genai.TypeString},
				},
				Required: []string{"problem", "answer"},
			},
		},
	},
	Required: []string{"items"},
}
