package domain

import "time"

// CampaignStatus is the lifecycle state of a donation campaign.
type CampaignStatus string

const (
	CampaignUpcoming  CampaignStatus = "upcoming"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign is a standalone donation drive, independent of any bank.
type Campaign struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Date              time.Time      `json:"date"`
	Location          string         `json:"location"`
	Organizer         string         `json:"organizer"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone,omitempty"`
	City              string         `json:"city"`
	TargetDonors      int            `json:"targetDonors"`
	RegisteredDonors  int            `json:"registeredDonors"`
	Status            CampaignStatus `json:"status"`
	BloodGroupsNeeded []string       `json:"bloodGroupsNeeded"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// StatusAt derives the lifecycle state for a campaign whose drive lasts
// one day: upcoming before its date, active on the day, completed after.
func (c *Campaign) StatusAt(now time.Time) CampaignStatus {
	day := 24 * time.Hour
	start := c.Date.Truncate(day)
	switch {
	case now.Before(start):
		return CampaignUpcoming
	case now.Before(start.Add(day)):
		return CampaignActive
	default:
		return CampaignCompleted
	}
}
