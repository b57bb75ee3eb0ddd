// ABOUTME: Data models for sales-calling entities
// ABOUTME: Defines Contact, ContactGroup, Lead, Campaign, CallRecord, and onboarding structs
package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact statuses.
const (
	ContactStatusActive   = "active"
	ContactStatusInactive = "inactive"
	ContactStatusBlocked  = "blocked"
	ContactStatusDND      = "dnd"
)

// Contact sources.
const (
	SourceManual  = "manual"
	SourceImport  = "import"
	SourceAPI     = "api"
	SourceWebsite = "website"
)

type Contact struct {
	ID          uuid.UUID     `json:"id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name,omitempty"`
	Email       string        `json:"email,omitempty"`
	Phone       string        `json:"phone"`
	CompanyName string        `json:"company_name,omitempty"`
	JobTitle    string        `json:"job_title,omitempty"`
	City        string        `json:"city,omitempty"`
	Status      string        `json:"status,omitempty"`
	Source      string        `json:"source,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Group       *ContactGroup `json:"group,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// FullName joins first and last name, tolerating a missing last name.
func (c *Contact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type ContactGroup struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color,omitempty"`
	ContactCount int       `json:"contact_count,omitempty"`
}

type ContactStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	BySource map[string]int `json:"by_source"`
	ByGroup  map[string]int `json:"by_group"`
}

// Call priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidPriority reports whether p is one of the accepted call priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ScheduledCall is either bound to one contact (single mode) or a list of
// contact ids (bulk mode). The two are mutually exclusive: Notes and Reason
// only travel in single mode.
type ScheduledCall struct {
	ContactID   *uuid.UUID  `json:"contact,omitempty"`
	ContactIDs  []uuid.UUID `json:"contact_ids,omitempty"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	Priority    string      `json:"priority"`
	Reason      string      `json:"reason,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// Bulk reports whether the call targets a contact id list.
func (s *ScheduledCall) Bulk() bool {
	return s.ContactID == nil && len(s.ContactIDs) > 0
}

// BusinessSelection is the 4-level dependent classification chain built by
// the onboarding wizard. Levels are hierarchical: a value only makes sense
// under its recorded ancestors.
type BusinessSelection struct {
	Industry      string `json:"industry"`
	Subcategory   string `json:"subcategory"`
	BusinessType  string `json:"business_type"`
	BusinessModel string `json:"business_model"`
}

// Complete reports whether all four levels hold a value.
func (s BusinessSelection) Complete() bool {
	return s.Industry != "" && s.Subcategory != "" && s.BusinessType != "" && s.BusinessModel != ""
}

type BusinessProfile struct {
	Industry            string   `json:"industry"`
	Subcategory         string   `json:"subcategory"`
	BusinessType        string   `json:"business_type"`
	BusinessModel       string   `json:"business_model"`
	Description         string   `json:"description"`
	TargetAudience      string   `json:"target_audience"`
	UniqueSellingPoints []string `json:"unique_selling_points"`
	Competitors         []string `json:"competitors"`
}

// Import statuses reported by the backend.
const (
	ImportStatusProcessing = "processing"
	ImportStatusCompleted  = "completed"
	ImportStatusFailed     = "failed"
)

type ImportStatus struct {
	ImportID          string `json:"import_id"`
	Status            string `json:"status"`
	ProcessedRows     int    `json:"processed_rows"`
	TotalRows         int    `json:"total_rows"`
	SuccessfulImports int    `json:"successful_imports"`
	FailedImports     int    `json:"failed_imports"`
}

// Terminal reports whether polling should stop.
func (s *ImportStatus) Terminal() bool {
	return s.Status == ImportStatusCompleted || s.Status == ImportStatusFailed
}

// Percent returns processed/total as 0-100, guarding the zero-row import.
func (s *ImportStatus) Percent() float64 {
	if s.TotalRows == 0 {
		return 0
	}
	return float64(s.ProcessedRows) / float64(s.TotalRows) * 100
}

type Company struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Company   *Company  `json:"company,omitempty"`
}

// Lead statuses.
const (
	LeadInterested    = "interested"
	LeadNotInterested = "not_interested"
	LeadNotPickedUp   = "not_picked_up"
	LeadFollowUp      = "follow_up"
)

type Lead struct {
	ID            uuid.UUID `json:"id"`
	Contact       Contact   `json:"contact"`
	Status        string    `json:"status"`
	Score         int       `json:"score"`
	LastContacted string    `json:"last_contacted,omitempty"`
	NextFollowUp  string    `json:"next_follow_up,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// Campaign statuses.
const (
	CampaignActive    = "active"
	CampaignScheduled = "scheduled"
	CampaignPaused    = "paused"
	CampaignCompleted = "completed"
	CampaignStopped   = "stopped"
)

type Campaign struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	TotalContacts  int       `json:"total_contacts"`
	CompletedCalls int       `json:"completed_calls"`
	SuccessRate    float64   `json:"success_rate"`
	CreatedAt      string    `json:"created_at,omitempty"`
	ScheduledAt    string    `json:"scheduled_at,omitempty"`
}

// Call outcomes.
const (
	OutcomeInterested    = "interested"
	OutcomeNotInterested = "not_interested"
	OutcomeNoAnswer      = "no_answer"
	OutcomeCallback      = "callback"
)

// Call record statuses.
const (
	CallCompleted  = "completed"
	CallFailed     = "failed"
	CallInProgress = "in_progress"
	CallScheduled  = "scheduled"
)

type CallRecord struct {
	ID           uuid.UUID `json:"id"`
	Contact      Contact   `json:"contact"`
	Status       string    `json:"status"`
	Outcome      string    `json:"outcome,omitempty"`
	Duration     int       `json:"duration"` // seconds
	StartedAt    time.Time `json:"started_at"`
	RecordingURL string    `json:"recording_url,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}
