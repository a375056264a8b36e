package models

import "fmt"

// StepType controls how resolution steps are rendered.
type StepType string

const (
	StepTypeNumbered StepType = "numbered"
	StepTypeBullets  StepType = "bullets"
)

// ParseStepType validates a step type string from storage or seed data.
func ParseStepType(s string) (StepType, error) {
	switch s {
	case string(StepTypeNumbered):
		return StepTypeNumbered, nil
	case string(StepTypeBullets):
		return StepTypeBullets, nil
	default:
		return "", fmt.Errorf("invalid step type %q", s)
	}
}

// Resolution is the ordered remediation procedure attached to a scenario.
// Each scenario has at most one resolution.
type Resolution struct {
	ID         int64    `json:"id"`
	ScenarioID int64    `json:"scenario_id"`
	Steps      []string `json:"steps"`
	StepType   StepType `json:"step_type"`
}
