package intakeform

import (
	"reflect"
	"testing"
)

func TestCurrentReturnsCopy(t *testing.T) {
	a := Current()
	a[0].ID = "mutated"

	b := Current()
	if b[0].ID == "mutated" {
		t.Fatal("Current() leaked the internal slice")
	}
}

func TestRequiredIDs(t *testing.T) {
	want := []string{"chiefComplaint", "symptoms", "symptomDuration"}
	if got := RequiredIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredIDs() = %v, want %v", got, want)
	}
}

func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name      string
		responses map[string]string
		want      []string
	}{
		{
			name: "all required present",
			responses: map[string]string{
				"chiefComplaint":  "headache",
				"symptoms":        "throbbing pain behind the eyes",
				"symptomDuration": "3 days",
			},
			want: nil,
		},
		{
			name:      "empty submission reports every required field",
			responses: map[string]string{},
			want:      []string{"chiefComplaint", "symptomDuration", "symptoms"},
		},
		{
			name: "whitespace-only answer counts as missing",
			responses: map[string]string{
				"chiefComplaint":  "headache",
				"symptoms":        "   \n\t",
				"symptomDuration": "3 days",
			},
			want: []string{"symptoms"},
		},
		{
			name: "optional fields never reported",
			responses: map[string]string{
				"chiefComplaint":  "headache",
				"symptoms":        "pain",
				"symptomDuration": "3 days",
				"medications":     "",
				"goals":           "",
			},
			want: nil,
		},
		{
			name: "multiple missing aggregated and sorted",
			responses: map[string]string{
				"symptoms": "pain",
			},
			want: []string{"chiefComplaint", "symptomDuration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingRequired(tt.responses); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingRequired() = %v, want %v", got, tt.want)
			}
		})
	}
}
