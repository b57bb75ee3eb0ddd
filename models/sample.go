// ABOUTME: Static sample data for leads, campaigns, and call history
// ABOUTME: Stands in for backend analytics until those endpoints ship
package models

import (
	"time"

	"github.com/google/uuid"
)

// SampleLeads returns placeholder lead rows rendered by the leads view.
func SampleLeads() []Lead {
	return []Lead{
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Contact: Contact{
				FirstName:   "John",
				LastName:    "Doe",
				Email:       "john@example.com",
				Phone:       "+919876543210",
				CompanyName: "Tech Corp",
			},
			Status:        LeadInterested,
			Score:         85,
			LastContacted: "2024-01-15",
			NextFollowUp:  "2024-01-20",
			Notes:         "Interested in premium package",
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Contact: Contact{
				FirstName:   "Jane",
				LastName:    "Smith",
				Email:       "jane@example.com",
				Phone:       "+919876543211",
				CompanyName: "Business Inc",
			},
			Status:        LeadFollowUp,
			Score:         62,
			LastContacted: "2024-01-14",
			NextFollowUp:  "2024-01-18",
			Notes:         "Asked for pricing sheet",
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Contact: Contact{
				FirstName:   "Mike",
				LastName:    "Johnson",
				Phone:       "+919876543212",
				CompanyName: "StartupXYZ",
			},
			Status:        LeadNotPickedUp,
			Score:         31,
			LastContacted: "2024-01-15",
			Notes:         "No answer, will try again later",
		},
	}
}

// SampleCampaigns returns placeholder campaign rows.
func SampleCampaigns() []Campaign {
	return []Campaign{
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000011"),
			Name:           "Q4 Sales Push",
			Status:         CampaignActive,
			TotalContacts:  150,
			CompletedCalls: 89,
			SuccessRate:    78,
			CreatedAt:      "2024-01-10",
			ScheduledAt:    "2024-01-15",
		},
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000012"),
			Name:           "New Product Launch",
			Status:         CampaignScheduled,
			TotalContacts:  200,
			CreatedAt:      "2024-01-12",
			ScheduledAt:    "2024-01-20",
		},
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000013"),
			Name:           "Follow-up Campaign",
			Status:         CampaignCompleted,
			TotalContacts:  75,
			CompletedCalls: 75,
			SuccessRate:    82,
			CreatedAt:      "2024-01-05",
			ScheduledAt:    "2024-01-08",
		},
	}
}

// SampleCallHistory returns placeholder call records.
func SampleCallHistory() []CallRecord {
	return []CallRecord{
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000021"),
			Contact: Contact{
				FirstName:   "John",
				LastName:    "Doe",
				Phone:       "+919876543210",
				CompanyName: "Tech Corp",
			},
			Status:       CallCompleted,
			Outcome:      OutcomeInterested,
			Duration:     285,
			StartedAt:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			RecordingURL: "/recordings/call1.mp3",
			Notes:        "Customer showed interest in premium package",
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000022"),
			Contact: Contact{
				FirstName:   "Jane",
				LastName:    "Smith",
				Phone:       "+919876543211",
				CompanyName: "Business Inc",
			},
			Status:       CallCompleted,
			Outcome:      OutcomeNotInterested,
			Duration:     120,
			StartedAt:    time.Date(2024, 1, 15, 11, 15, 0, 0, time.UTC),
			RecordingURL: "/recordings/call2.mp3",
			Notes:        "Not interested at this time",
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000023"),
			Contact: Contact{
				FirstName:   "Mike",
				LastName:    "Johnson",
				Phone:       "+919876543212",
				CompanyName: "StartupXYZ",
			},
			Status:    CallFailed,
			Outcome:   OutcomeNoAnswer,
			StartedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			Notes:     "No answer, will try again later",
		},
	}
}
