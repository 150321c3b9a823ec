// Package webhook entrega notificaciones con un POST JSON a una URL
// configurada. Es la alternativa sin broker: el receptor típico es un
// servicio de mail o un canal de chat con endpoint entrante.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"vetd/internal/platform/httpclient"
	"vetd/internal/ports/notify"
)

var ErrNoURL = errors.New("webhook: url is required")

type Notifier struct {
	client *httpclient.Client
	url    string
	log    zerolog.Logger
}

func New(url string, timeout time.Duration, log zerolog.Logger) (*Notifier, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoURL
	}
	return &Notifier{
		client: httpclient.New(timeout),
		url:    url,
		log:    log,
	}, nil
}

// NewWithTransport inyecta el RoundTripper; lo usan los tests.
func NewWithTransport(url string, tr http.RoundTripper, log zerolog.Logger) (*Notifier, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoURL
	}
	return &Notifier{
		client: httpclient.NewWithTransport(0, tr),
		url:    url,
		log:    log,
	}, nil
}

type payload struct {
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	SentAt    time.Time         `json:"sent_at"`
}

func (n *Notifier) Notify(ctx context.Context, msg notify.Notification) error {
	err := n.client.DoJSON(ctx, http.MethodPost, n.url, nil, payload{
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Metadata:  msg.Metadata,
		SentAt:    time.Now().UTC(),
	}, nil)
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}

	n.log.Debug().
		Str("recipient", msg.Recipient).
		Msg("webhook: notificación entregada")
	return nil
}
