package contracts

import (
	"fmt"
	"strings"
)

// Division identifies one competitive partition: state x gender x age group.
// Rankings are only comparable within a division.
type Division struct {
	State    string `json:"state"`
	Gender   string `json:"gender"`
	AgeGroup string `json:"age_group"`
}

// ParseDivision parses a "STATE:GENDER:AGE" triple
func ParseDivision(s string) (Division, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Division{}, fmt.Errorf("division %q must be STATE:GENDER:AGE", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return Division{}, fmt.Errorf("division %q has an empty field", s)
		}
	}
	return Division{State: parts[0], Gender: parts[1], AgeGroup: parts[2]}, nil
}

// Key returns a filesystem/DB-safe identifier, e.g. "AZ_M_U11"
func (d Division) Key() string {
	return d.State + "_" + d.Gender + "_" + d.AgeGroup
}

// String implements fmt.Stringer
func (d Division) String() string {
	return d.State + ":" + d.Gender + ":" + d.AgeGroup
}
