package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bloodlink/coordination-api/internal/api/metrics"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// ChatbotService answers free-text questions. A small set of intents is
// resolved against live storage; everything else gets a canned reply.
type ChatbotService struct {
	accounts  ports.AccountRepository
	banks     ports.BankRepository
	campaigns ports.CampaignRepository
}

func NewChatbotService(accounts ports.AccountRepository, banks ports.BankRepository, campaigns ports.CampaignRepository) *ChatbotService {
	return &ChatbotService{accounts: accounts, banks: banks, campaigns: campaigns}
}

func (s *ChatbotService) Reply(ctx context.Context, message string) (string, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case strings.Contains(msg, "donor") && (strings.Contains(msg, "how many") || strings.Contains(msg, "count")):
		metrics.ChatbotMessagesTotal.WithLabelValues("donor_count").Inc()
		donors, err := s.accounts.List(ctx, true)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("We currently have %d registered donors ready to help.", len(donors)), nil

	case strings.Contains(msg, "stock") || strings.Contains(msg, "blood bank") || strings.Contains(msg, "availab"):
		metrics.ChatbotMessagesTotal.WithLabelValues("bank_stock").Inc()
		banks, err := s.banks.List(ctx)
		if err != nil {
			return "", err
		}
		if len(banks) == 0 {
			return "No blood banks are registered yet. Please check back soon.", nil
		}
		units := 0
		for _, b := range banks {
			units += b.Stock.TotalUnits()
		}
		return fmt.Sprintf("%d blood banks are registered with %d units in stock overall. Visit the banks page for per-group availability.", len(banks), units), nil

	case strings.Contains(msg, "campaign") || strings.Contains(msg, "drive") || strings.Contains(msg, "event"):
		metrics.ChatbotMessagesTotal.WithLabelValues("campaigns").Inc()
		campaigns, err := s.campaigns.List(ctx, ports.CampaignFilter{})
		if err != nil {
			return "", err
		}
		if len(campaigns) == 0 {
			return "There are no donation campaigns scheduled right now.", nil
		}
		next := campaigns[0]
		return fmt.Sprintf("There are %d campaigns on the calendar. The nearest one is %q in %s on %s.",
			len(campaigns), next.Title, next.City, next.Date.Format("Jan 2, 2006")), nil

	case strings.Contains(msg, "eligib") || strings.Contains(msg, "can i donate"):
		metrics.ChatbotMessagesTotal.WithLabelValues("eligibility").Inc()
		return "Most healthy adults aged 18-65 weighing over 50kg can donate. Your eligibility is confirmed at checkup, based on your latest medical record.", nil

	case strings.Contains(msg, "sos") || strings.Contains(msg, "emergency") || strings.Contains(msg, "urgent"):
		metrics.ChatbotMessagesTotal.WithLabelValues("sos").Inc()
		return "For urgent needs, submit an SOS request with the blood group and city. Matching donors are alerted immediately.", nil
	}

	metrics.ChatbotMessagesTotal.WithLabelValues("fallback").Inc()
	return "I can help with donor counts, blood bank stock, campaigns, eligibility, and SOS requests. What would you like to know?", nil
}
