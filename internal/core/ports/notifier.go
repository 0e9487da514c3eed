package ports

import "context"

// Notifier delivers a message to a recipient. The in-tree
// implementation logs instead of dispatching real email, matching the
// behaviour when no mail credentials are configured.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}
