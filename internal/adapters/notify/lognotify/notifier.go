// Package lognotify es el notifier de dev: escribe la notificación al
// log estructurado en lugar de publicarla a un broker.
package lognotify

import (
	"context"

	"github.com/rs/zerolog"

	"vetd/internal/ports/notify"
)

type Notifier struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Notify(ctx context.Context, msg notify.Notification) error {
	evt := n.log.Info().
		Str("recipient", msg.Recipient).
		Str("subject", msg.Subject)
	for k, v := range msg.Metadata {
		evt = evt.Str(k, v)
	}
	evt.Msg("notification")
	return nil
}
