package payroll

import (
	"fmt"
	"strings"
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ArgumentError reports every input field that failed validation, not just
// the first one found.
type ArgumentError struct {
	Issues []FieldIssue
}

func (e *ArgumentError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s %s", issue.Field, issue.Reason))
	}
	return "invalid payroll input: " + strings.Join(parts, "; ")
}

// Validate checks that every input field is positive.
func (in Input) Validate() error {
	var issues []FieldIssue
	if in.DailyWage <= 0 {
		issues = append(issues, FieldIssue{Field: "dailyWage", Reason: "must be greater than zero"})
	}
	if in.IntegrationFactor <= 0 {
		issues = append(issues, FieldIssue{Field: "integrationFactor", Reason: "must be greater than zero"})
	}
	if in.DaysWorked <= 0 {
		issues = append(issues, FieldIssue{Field: "daysWorked", Reason: "must be greater than zero"})
	}
	if len(issues) > 0 {
		return &ArgumentError{Issues: issues}
	}
	return nil
}
