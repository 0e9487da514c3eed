package ports

import "context"

// ChatbotService answers free-text questions. Recognised intents are
// resolved against live storage (donor counts, bank stock, campaigns);
// anything else gets a canned guidance reply.
type ChatbotService interface {
	Reply(ctx context.Context, message string) (string, error)
}
