package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vetd/docs"
	"vetd/internal/apiversion"
	"vetd/internal/contracts"
	"vetd/internal/domain/appointments"
	"vetd/internal/domain/clinics"
	"vetd/internal/domain/messages"
	"vetd/internal/domain/pets"
	"vetd/internal/domain/vets"
	"vetd/internal/httpapi"
	"vetd/internal/middleware"
	"vetd/internal/platform/logger"
	"vetd/internal/platform/metrics"
	"vetd/internal/ports/auth"
)

// Options junta todo lo que el router necesita ya construido. El wiring
// de adapters (DB, broker, verifier) es problema de main; acá solo se
// montan rutas.
type Options struct {
	Bundle contracts.Bundle

	Pets         *pets.Service
	Clinics      *clinics.Service
	Vets         *vets.Service
	Appointments *appointments.Service
	Messages     *messages.Service

	AuthVerifier auth.Verifier // puede ser nil (modo dev)

	// Metrics puede ser nil (deshabilitado); los validadores y el
	// endpoint /metrics lo toleran.
	Metrics *metrics.Collector

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger.WithComponent(opts.Logger, "http")))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// La versión más nueva valida con fallback hacia la más vieja; el
	// resto valida directo contra su contrato.
	latest := contracts.Versions[len(contracts.Versions)-1]
	oldest := contracts.Versions[0]
	validator := func(resource string) *httpapi.Validator {
		return &httpapi.Validator{
			Registry: opts.Bundle.Registry,
			Fallback: opts.Bundle.FallbackFor(resource),
			Resource: resource,
			Latest:   latest,
			Oldest:   oldest,
			Metrics:  opts.Metrics,
		}
	}

	petsH := pets.NewHandler(opts.Pets, validator(contracts.ResourcePets), logger.WithComponent(opts.Logger, "pets"))
	clinicsH := clinics.NewHandler(opts.Clinics, validator(contracts.ResourceClinics), logger.WithComponent(opts.Logger, "clinics"))
	vetsH := vets.NewHandler(opts.Vets, validator(contracts.ResourceVeterinarians), logger.WithComponent(opts.Logger, "vets"))
	apptsH := appointments.NewHandler(opts.Appointments, validator(contracts.ResourceAppointments), logger.WithComponent(opts.Logger, "appointments"))
	messagesH := messages.NewHandler(opts.Messages, validator(contracts.ResourceMessages), logger.WithComponent(opts.Logger, "messages"))

	for _, version := range contracts.Versions {
		r.Route("/api/"+version, func(vr chi.Router) {
			petsH.RegisterRoutes(vr, version)
			clinicsH.RegisterRoutes(vr, version)
			vetsH.RegisterRoutes(vr, version)
			apptsH.RegisterRoutes(vr, version)
			messagesH.RegisterRoutes(vr, version)

			vr.Get("/meta/schemas/{resource}", metaSchema(opts, version))
		})
	}

	r.Get("/api/meta/compat", metaCompat(opts))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
		seedCompatScores(opts)
	}

	return r
}

// metaSchema exporta el contrato de un recurso como JSON Schema. El
// documento exportado se compila como self-check: si no compila es un
// contrato mal definido, no un problema del cliente.
func metaSchema(opts Options, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource := chi.URLParam(r, "resource")
		c, ok := opts.Bundle.Registry.Lookup(version, resource)
		if !ok {
			httpapi.WriteError(w, http.StatusNotFound, version, "unknown resource")
			return
		}

		doc := apiversion.ExportJSONSchema(c)
		if err := apiversion.CompileSchema(doc); err != nil {
			opts.Logger.Error().Err(err).
				Str("resource", resource).
				Str("version", version).
				Msg("meta: el schema exportado no compila")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, doc, nil)
	}
}

// metaCompat corre el reporte de compatibilidad entre dos versiones
// registradas de un recurso. El reporte no está atado a la versión de la
// ruta, así que responde el Report pelado, sin envelope.
func metaCompat(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		resource := q.Get("resource")
		from := q.Get("from")
		to := q.Get("to")

		older, okFrom := opts.Bundle.Registry.Lookup(from, resource)
		newer, okTo := opts.Bundle.Registry.Lookup(to, resource)
		if !okFrom || !okTo {
			httpapi.WriteError(w, http.StatusNotFound, to, "unknown resource or version")
			return
		}

		report := apiversion.CompareContracts(older, newer)
		if opts.Metrics != nil {
			opts.Metrics.SetCompatScore(resource, from, to, report.Score)
		}
		httpapi.WriteJSON(w, http.StatusOK, report)
	}
}

// seedCompatScores publica el score de cada recurso entre la versión más
// vieja y la más nueva al arrancar, para que el gauge no aparezca vacío
// hasta la primera consulta de compat.
func seedCompatScores(opts Options) {
	from := contracts.Versions[0]
	to := contracts.Versions[len(contracts.Versions)-1]
	if from == to {
		return
	}
	for _, resource := range contracts.Resources {
		older, okFrom := opts.Bundle.Registry.Lookup(from, resource)
		newer, okTo := opts.Bundle.Registry.Lookup(to, resource)
		if !okFrom || !okTo {
			continue
		}
		report := apiversion.CompareContracts(older, newer)
		opts.Metrics.SetCompatScore(resource, from, to, report.Score)
	}
}
