// Package notifier defines how the backend reaches merchants and the
// collections team.
package notifier

import (
	"context"
	"strings"

	"mca/pkg/serrors"
)

// Message is a plain text email.
type Message struct {
	To      []string
	Subject string
	Text    string
}

// Validate rejects messages that can never be delivered.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return serrors.With(serrors.ErrBadRequest, "message has no recipient")
	}
	for _, to := range m.To {
		if !strings.Contains(to, "@") {
			return serrors.With(serrors.ErrBadRequest, "invalid recipient %q", to)
		}
	}
	if m.Subject == "" {
		return serrors.With(serrors.ErrBadRequest, "message has no subject")
	}

	return nil
}

// Notifier delivers messages. Delivery failures that may succeed later are
// reported as serrors.ErrUnavailable.
//
//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
