package notify

import "context"

// Notification es el aviso saliente mínimo que arma el dominio: quién lo
// recibe, qué pasó y metadata libre para el consumidor.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
	Metadata  map[string]string
}

// Notifier publica avisos fuera del proceso. La entrega es best-effort
// desde el punto de vista del request: el que llama loguea el error y
// sigue, la garantía de entrega es del broker.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
