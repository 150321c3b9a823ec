// Package logger arma el logger zerolog del proceso. El nivel, el
// formato y el destino salen de la configuración; cuando el destino es
// un archivo la salida rota con lumberjack.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controla la construcción del logger raíz.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json o text
	Output string // "stdout" o la ruta de un archivo

	// Rotación del archivo de log. Solo aplica cuando Output es una ruta.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New construye el logger raíz del proceso. Un nivel inválido cae a
// info en vez de fallar: preferimos un proceso hablador a uno mudo.
func New(opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if opts.Output != "" && !strings.EqualFold(opts.Output, "stdout") {
		out = &lumberjack.Logger{
			Filename:   opts.Output,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
	}

	if strings.EqualFold(opts.Format, "text") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("app", "vetd").
		Logger()
}

// WithComponent devuelve un logger hijo etiquetado con el componente.
func WithComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
