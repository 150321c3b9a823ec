// Package config carga la configuración del proceso desde variables de
// entorno. Todo tiene default razonable para levantar el API en modo
// dev sin configurar nada: repos en memoria, notifier a log y auth con
// X-Debug-User-ID.
package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	// DBDSN vacío = repos en memoria (modo dev).
	DBDSN         string `env:"DB_DSN"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
	LogOutput     string `env:"LOG_OUTPUT" envDefault:"stdout"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`

	// Notificaciones, en orden de preferencia: broker AMQP, webhook HTTP,
	// y sin nada configurado quedan en el log.
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"vetd.notifications"`
	WebhookURL   string `env:"WEBHOOK_URL"`

	// JWTSecret vacío = modo dev: la identidad sale de X-Debug-User-ID.
	JWTSecret string `env:"JWT_SECRET"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// DefaultClinicID es la clínica que se le asigna a una cita v1 al
	// migrarla a v2, porque v1 no conocía clinic_id.
	DefaultClinicID string `env:"DEFAULT_CLINIC_ID" envDefault:"clinic-default"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
