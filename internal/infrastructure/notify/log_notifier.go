// Package notify implements the Notifier port. The only in-tree
// implementation logs the message instead of dispatching real email,
// mirroring the behaviour of a deployment without mail credentials.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, to, subject, body string) error {
	n.log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("notification delivered (log transport)")
	return nil
}
