// Package clinical holds the structured summary vocabulary shared by the
// persistence schema and the summary service.
package clinical

// Medication is one entry in a summary's medication list.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Purpose   string `json:"purpose,omitempty"`
}

// RedFlag is a summary-identified concern warranting clinical attention.
type RedFlag struct {
	Flag           string `json:"flag"`
	Severity       string `json:"severity"` // high | medium | low
	Recommendation string `json:"recommendation"`
}

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// NotReported is the sentinel for systems-review categories the generator
// said nothing about.
const NotReported = "not reported"

// SystemCategories is the fixed set of body-system categories. Every persisted
// systems review contains all of them.
var SystemCategories = []string{
	"cardiovascular",
	"respiratory",
	"gastrointestinal",
	"musculoskeletal",
	"neurological",
	"endocrine",
	"immunological",
	"dermatological",
	"psychological",
	"other",
}
