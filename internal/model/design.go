package model

import (
	"encoding/json"
	"time"
)

// AnalysisStatus tracks the AI analysis pipeline for a design.
type AnalysisStatus string

const (
	AnalysisPending    AnalysisStatus = "pending"
	AnalysisProcessing AnalysisStatus = "processing"
	AnalysisCompleted  AnalysisStatus = "completed"
	AnalysisFailed     AnalysisStatus = "failed"
)

// IsTerminal reports whether polling the analysis is no longer useful.
func (s AnalysisStatus) IsTerminal() bool {
	return s == AnalysisCompleted || s == AnalysisFailed
}

// Design is a designer's uploaded piece.
type Design struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Category         string          `json:"category,omitempty"`
	Images           []string        `json:"images,omitempty"`
	Status           string          `json:"status"`
	AIAnalysisStatus AnalysisStatus  `json:"ai_analysis_status"`
	AIAnalysis       json.RawMessage `json:"ai_analysis,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// DesignInput is the create/update payload.
type DesignInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// VariationRequest triggers AI variation generation for a design.
type VariationRequest struct {
	Count  int    `json:"count" validate:"min=1,max=8"`
	Prompt string `json:"prompt,omitempty"`
}

// ValidationStatus is the lifecycle of a market validation campaign.
type ValidationStatus string

const (
	ValidationPending   ValidationStatus = "pending"
	ValidationActive    ValidationStatus = "active"
	ValidationCompleted ValidationStatus = "completed"
	ValidationExpired   ValidationStatus = "expired"
	ValidationCancelled ValidationStatus = "cancelled"
)

// IsTerminal is true for every status other than pending and active.
func (s ValidationStatus) IsTerminal() bool {
	return s != ValidationPending && s != ValidationActive
}

// Validation is a market validation run for a design.
type Validation struct {
	ID        int64            `json:"id"`
	DesignID  int64            `json:"design_id"`
	Status    ValidationStatus `json:"status"`
	Votes     int              `json:"votes"`
	Score     float64          `json:"score"`
	EndsAt    *time.Time       `json:"ends_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
