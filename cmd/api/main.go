package main

import (
	"net/http"
	"time"

	"vetd/internal/adapters/auth/jwtauth"
	"vetd/internal/adapters/notify/lognotify"
	"vetd/internal/adapters/notify/rabbit"
	"vetd/internal/adapters/notify/webhook"
	mem "vetd/internal/adapters/storage/memory"
	pg "vetd/internal/adapters/storage/postgres"
	"vetd/internal/contracts"
	"vetd/internal/domain/appointments"
	"vetd/internal/domain/clinics"
	"vetd/internal/domain/messages"
	"vetd/internal/domain/pets"
	"vetd/internal/domain/vets"
	"vetd/internal/platform/config"
	"vetd/internal/platform/logger"
	"vetd/internal/platform/metrics"
	"vetd/internal/ports/auth"
	"vetd/internal/ports/notify"
	"vetd/internal/router"
)

// @title        vetd API
// @version      2.0
// @description  Backend de gestión veterinaria con contratos versionados: v1 y v2 conviven y los payloads viejos migran solos donde hay migración registrada.
// @BasePath     /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Sin config no hay logger configurado todavía; el default a
		// stdout alcanza para morir informando.
		logger.New(logger.Options{}).Fatal().Err(err).Msg("config inválida")
	}

	log := logger.New(logger.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Output:     cfg.LogOutput,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	// Storage: con DSN va a Postgres, sin DSN repos en memoria (dev).
	var (
		petsRepo pets.Repository
		clinRepo clinics.Repository
		vetsRepo vets.Repository
		apptRepo appointments.Repository
		msgRepo  messages.Repository
	)
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo abrir la base")
		}
		if cfg.DBAutoMigrate {
			if err := pg.AutoMigrate(db); err != nil {
				log.Fatal().Err(err).Msg("automigrate falló")
			}
		}
		petsRepo = pg.NewPetsRepo(db)
		clinRepo = pg.NewClinicsRepo(db)
		vetsRepo = pg.NewVetsRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
		msgRepo = pg.NewMessagesRepo(db)
		log.Info().Msg("storage: postgres")
	} else {
		petsRepo = mem.NewPetRepo()
		clinRepo = mem.NewClinicRepo()
		vetsRepo = mem.NewVetRepo()
		apptRepo = mem.NewAppointmentRepo()
		msgRepo = mem.NewMessageRepo()
		log.Info().Msg("storage: in-memory (modo dev)")
	}

	// Notificaciones: broker AMQP si hay uno, si no webhook HTTP, y sin
	// nada configurado quedan en el log.
	var notifier notify.Notifier
	switch {
	case cfg.AMQPURL != "":
		rn, err := rabbit.New(cfg.AMQPURL, cfg.AMQPExchange, logger.WithComponent(log, "rabbit"))
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo conectar al broker")
		}
		defer rn.Close()
		notifier = rn
		log.Info().Str("exchange", cfg.AMQPExchange).Msg("notify: rabbitmq")
	case cfg.WebhookURL != "":
		wn, err := webhook.New(cfg.WebhookURL, 0, logger.WithComponent(log, "webhook"))
		if err != nil {
			log.Fatal().Err(err).Msg("webhook inválido")
		}
		notifier = wn
		log.Info().Msg("notify: webhook")
	default:
		notifier = lognotify.New(logger.WithComponent(log, "notify"))
		log.Info().Msg("notify: log (modo dev)")
	}

	// Auth: con secret exige Bearer JWT; sin secret el AuthContext acepta
	// X-Debug-User-ID.
	var verifier auth.Verifier
	if cfg.JWTSecret != "" {
		v, err := jwtauth.NewVerifier(cfg.JWTSecret)
		if err != nil {
			log.Fatal().Err(err).Msg("verifier inválido")
		}
		verifier = v
		log.Info().Msg("auth: jwt")
	} else {
		log.Warn().Msg("auth: modo dev, identidad por X-Debug-User-ID")
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector()
	}

	bundle := contracts.Build(contracts.Options{DefaultClinicID: cfg.DefaultClinicID})

	r := router.NewRouter(router.Options{
		Bundle:       bundle,
		Pets:         pets.NewService(petsRepo),
		Clinics:      clinics.NewService(clinRepo),
		Vets:         vets.NewService(vetsRepo),
		Appointments: appointments.NewService(apptRepo, notifier, logger.WithComponent(log, "appointments")),
		Messages:     messages.NewService(msgRepo, notifier, logger.WithComponent(log, "messages")),
		AuthVerifier: verifier,
		Metrics:      collector,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
