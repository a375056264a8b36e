package models

import (
	"fmt"
	"math"
)

// EntityKind selects which catalog table a search runs against.
type EntityKind string

const (
	KindScenario  EntityKind = "scenario"
	KindWorkOrder EntityKind = "work_order"
)

// ParseEntityKind validates a kind string from the API. An empty string
// defaults to scenario, matching the original search behavior.
func ParseEntityKind(s string) (EntityKind, error) {
	switch s {
	case "", string(KindScenario):
		return KindScenario, nil
	case string(KindWorkOrder):
		return KindWorkOrder, nil
	default:
		return "", fmt.Errorf("invalid kind %q: must be scenario or work_order", s)
	}
}

// Scenario is a known troubleshooting issue in the catalog.
type Scenario struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WorkOrderMetadata holds the optional structured flags attached to a work
// order template. All fields are optional; a nil pointer means the flag was
// never set, which renders differently from an explicit false.
type WorkOrderMetadata struct {
	TimeBound                *bool   `json:"time_bound,omitempty"`
	NoTruck                  *bool   `json:"no_truck,omitempty"`
	SLA                      *string `json:"sla,omitempty"`
	CustomerServiceImpacting *string `json:"customer_service_impacting,omitempty"`
	Category                 *string `json:"category,omitempty"`
	ConexonJobOnly           *bool   `json:"conexon_job_only,omitempty"`
}

// WorkOrder is a named procedural template in the catalog.
type WorkOrder struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Metadata    *WorkOrderMetadata `json:"metadata,omitempty"`
}

// Candidate is one similarity-search hit: a catalog entity plus its cosine
// distance to the query vector (lower is more similar).
type Candidate struct {
	Kind        EntityKind
	ID          int64
	Title       string
	Description string
	Metadata    *WorkOrderMetadata
	Distance    float64
}

// EnrichedResult is a Candidate joined with its feedback aggregate. The
// feedback fields are omitted entirely when the entity has no feedback yet;
// "no feedback" and "0% helpful" are different signals to the caller.
type EnrichedResult struct {
	Kind              EntityKind         `json:"kind"`
	ID                int64              `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Metadata          *WorkOrderMetadata `json:"metadata,omitempty"`
	Distance          float64            `json:"distance"`
	HelpfulCount      *int64             `json:"helpful_count,omitempty"`
	TotalFeedback     *int64             `json:"total_feedback,omitempty"`
	HelpfulPercentage *int               `json:"helpful_percentage,omitempty"`
}

// FeedbackStats is the read-side aggregate over the feedback ledger for one
// entity. It is derived at query time and never stored.
type FeedbackStats struct {
	HelpfulCount  int64 `json:"helpful_count"`
	TotalFeedback int64 `json:"total_feedback"`
}

// HelpfulPercentage returns round(100 * helpful / total), or nil when the
// entity has no feedback at all.
func (s FeedbackStats) HelpfulPercentage() *int {
	if s.TotalFeedback == 0 {
		return nil
	}

	pct := int(math.Round(100 * float64(s.HelpfulCount) / float64(s.TotalFeedback)))

	return &pct
}
