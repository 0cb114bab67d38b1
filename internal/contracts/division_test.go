package contracts

import (
	"testing"
)

func TestParseDivision(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Division
		wantErr bool
	}{
		{
			name:  "valid triple",
			input: "AZ:M:U11",
			want:  Division{State: "AZ", Gender: "M", AgeGroup: "U11"},
		},
		{
			name:  "trims whitespace",
			input: " CA : F : U14 ",
			want:  Division{State: "CA", Gender: "F", AgeGroup: "U14"},
		},
		{
			name:    "missing field",
			input:   "AZ:M",
			wantErr: true,
		},
		{
			name:    "empty field",
			input:   "AZ::U11",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDivision(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDivision(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDivision(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDivision(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDivisionKeyAndString(t *testing.T) {
	d := Division{State: "AZ", Gender: "M", AgeGroup: "U11"}

	if d.Key() != "AZ_M_U11" {
		t.Errorf("Key() = %s, want AZ_M_U11", d.Key())
	}
	if d.String() != "AZ:M:U11" {
		t.Errorf("String() = %s, want AZ:M:U11", d.String())
	}
}

func TestMatchGoalDiff(t *testing.T) {
	m := Match{GoalsFor: 3, GoalsAgainst: 1}
	if m.GoalDiff() != 2 {
		t.Errorf("GoalDiff() = %v, want 2", m.GoalDiff())
	}
}
