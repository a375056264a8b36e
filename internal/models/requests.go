package models

import "time"

// SearchRequest is the body for POST /search. Limit is optional; zero means
// the server default, and values above the configured maximum are clamped.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
	Kind  string `json:"kind" validate:"omitempty,oneof=scenario work_order"`
	Limit int    `json:"limit,omitempty"`
}

// SearchResponse is the response for POST /search.
type SearchResponse struct {
	Results []EnrichedResult `json:"results"`
}

// FeedbackRequest is the body for POST /feedback. ScenarioID is decoded as a
// raw JSON number so the handler can reject non-integer values like 1.5
// instead of silently truncating them.
type FeedbackRequest struct {
	Query      string  `json:"query"`
	ScenarioID float64 `json:"scenarioId"`
	Rating     int     `json:"rating"`
}

// FeedbackResponse is the response for POST /feedback. Success is reported
// even when the underlying write failed; feedback is best-effort telemetry.
type FeedbackResponse struct {
	Success bool `json:"success"`
}

// WorkOrderNamesResponse lists all work order titles in catalog order.
type WorkOrderNamesResponse struct {
	Names []string `json:"names"`
}

// ResolutionQuery holds the query parameters for GET /resolution.
type ResolutionQuery struct {
	ScenarioID int64 `form:"scenarioId" validate:"required,gt=0"`
}

// AnnotatedStep is one resolution step plus its optional work-order link.
type AnnotatedStep struct {
	Text string    `json:"text"`
	Link *StepLink `json:"link,omitempty"`
}

// StepLink describes where a known work-order name occurs inside a step so a
// client can render it as a navigable reference.
type StepLink struct {
	Prefix            string `json:"prefix"`
	LinkText          string `json:"linkText"`
	Suffix            string `json:"suffix"`
	HasCreationPrefix bool   `json:"hasCreationPrefix"`
	CreationPrefix    string `json:"creationPrefix,omitempty"`
}

// ResolutionResponse is the response for GET /resolution.
type ResolutionResponse struct {
	Resolution
	AnnotatedSteps []AnnotatedStep `json:"annotated_steps"`
}

// ActionRequest is the body for POST /actions/{actionType}. Which identifier
// is required depends on the action kind.
type ActionRequest struct {
	EquipmentID    string `json:"equipmentId,omitempty"`
	EquipmentName  string `json:"equipmentName,omitempty"`
	EquipmentType  string `json:"equipmentType,omitempty"`
	SubscriberID   string `json:"subscriberId,omitempty"`
	SubscriberName string `json:"subscriberName,omitempty"`
}

// SpeedTestResults is the structured payload returned by speed-test actions.
type SpeedTestResults struct {
	DownloadSpeed string    `json:"downloadSpeed"`
	UploadSpeed   string    `json:"uploadSpeed"`
	Latency       string    `json:"latency"`
	Timestamp     time.Time `json:"timestamp"`
}

// ActionResponse is the response for POST /actions/{actionType}.
type ActionResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Results   *SpeedTestResults `json:"results,omitempty"`
}

// ActionLogRequest is the body for POST /actions (audit log only).
type ActionLogRequest struct {
	ActionType string `json:"actionType" validate:"required"`
	ItemName   string `json:"itemName,omitempty"`
	ItemType   string `json:"itemType,omitempty"`
	ScenarioID *int64 `json:"scenarioId,omitempty"`
}
