// Package intakeform defines the versioned patient intake questionnaire.
//
// The form served to patients and the validation applied to submissions both
// come from the same definition, so the two can never drift. Bumping a
// question set means adding a new version here; stored intakes keep the
// schema_version they were submitted under.
package intakeform

import "sort"

// Version is the current questionnaire version, stored on every intake row.
const Version = 1

// QuestionType is the input widget hint sent to the frontend.
type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeTextarea QuestionType = "textarea"
)

// Question is a single questionnaire entry.
type Question struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
}

var questions = []Question{
	{
		ID:       "chiefComplaint",
		Question: "What is the main reason for your visit today?",
		Type:     TypeTextarea,
		Required: true,
	},
	{
		ID:       "symptoms",
		Question: "Please describe your symptoms in detail.",
		Type:     TypeTextarea,
		Required: true,
	},
	{
		ID:       "symptomDuration",
		Question: "How long have you been experiencing these symptoms?",
		Type:     TypeText,
		Required: true,
	},
	{
		ID:       "medications",
		Question: "List any medications you are currently taking (including dosage).",
		Type:     TypeTextarea,
		Required: false,
	},
	{
		ID:       "supplements",
		Question: "List any supplements or vitamins you take regularly.",
		Type:     TypeTextarea,
		Required: false,
	},
	{
		ID:       "allergies",
		Question: "Do you have any allergies? (medications, foods, environmental)",
		Type:     TypeTextarea,
		Required: false,
	},
	{
		ID:       "medicalHistory",
		Question: "Please describe your relevant medical history.",
		Type:     TypeTextarea,
		Required: false,
	},
	{
		ID:       "familyHistory",
		Question: "Is there any relevant family medical history?",
		Type:     TypeTextarea,
		Required: false,
	},
	{
		ID:       "lifestyle",
		Question: "Describe your lifestyle (diet, exercise, sleep, stress levels).",
		Type:     TypeTextarea,
		Required: false,
	},
	{
		ID:       "goals",
		Question: "What are your health goals for this visit?",
		Type:     TypeTextarea,
		Required: false,
	},
}

// Current returns a copy of the active question set.
func Current() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// RequiredIDs returns the IDs of every required question.
func RequiredIDs() []string {
	var ids []string
	for _, q := range questions {
		if q.Required {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// MissingRequired returns the IDs of required questions that are absent or
// blank in the submitted responses. The result covers every missing field in
// one pass so the patient can fix them all at once, and is sorted for stable
// output.
func MissingRequired(responses map[string]string) []string {
	var missing []string
	for _, q := range questions {
		if !q.Required {
			continue
		}
		if !hasAnswer(responses, q.ID) {
			missing = append(missing, q.ID)
		}
	}
	sort.Strings(missing)
	return missing
}

func hasAnswer(responses map[string]string, id string) bool {
	v, ok := responses[id]
	if !ok {
		return false
	}
	for _, r := range v {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
