package clinics

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"vetd/internal/httpapi"
	"vetd/internal/middleware"
)

// Handler publica clínicas bajo una versión del API. Las clínicas son
// compartidas: cualquier usuario autenticado lee y escribe.
type Handler struct {
	svc *Service
	val *httpapi.Validator
	log zerolog.Logger
}

func NewHandler(svc *Service, val *httpapi.Validator, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, version string) {
	r.Route("/clinics", func(cr chi.Router) {
		cr.Post("/", h.create(version))
		cr.Get("/", h.list(version))
		cr.Get("/{clinicID}", h.get(version))
		cr.Patch("/{clinicID}", h.update(version))
		cr.Delete("/{clinicID}", h.delete(version))
	})
}

// create godoc
// @Summary Registrar clínica
// @Description Crea una clínica. En v2 la zona horaria es obligatoria; un payload v1 sin timezone pasa por el fallback y la migración le inyecta UTC.
// @Tags clinics
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body map[string]any true "Clínica según el contrato de la versión"
// @Success 201 {object} apiversion.Envelope
// @Failure 401 {object} apiversion.Envelope
// @Failure 422 {object} apiversion.Envelope "Errores de validación de campos"
// @Router /v2/clinics [post]
func (h *Handler) create(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		raw, err := httpapi.DecodeBody(r)
		if err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, version, "invalid json")
			return
		}

		res, err := h.val.ValidateBody(version, raw)
		if err != nil {
			h.log.Error().Err(err).Msg("clinics: contrato sin registrar")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		c, err := h.svc.Create(r.Context(), userID, clinicInput(res.Data))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
				return
			}
			h.log.Error().Err(err).Msg("clinics: create")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		httpapi.WriteData(w, http.StatusCreated, version, h.shape(version, c), res.Warnings)
	}
}

func (h *Handler) list(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		pg := httpapi.ParsePagination(r)
		items, total, err := h.svc.List(r.Context(), ListFilter{
			City:   r.URL.Query().Get("city"),
			Limit:  pg.PerPage,
			Offset: pg.Offset(),
		})
		if err != nil {
			h.log.Error().Err(err).Msg("clinics: list")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, c := range items {
			out = append(out, h.shape(version, c))
		}
		httpapi.WriteList(w, version, out, total, pg.Page, pg.PerPage)
	}
}

func (h *Handler) get(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		c, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "clinicID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "clinic not found")
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, c), nil)
	}
}

func (h *Handler) update(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		current, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "clinicID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "clinic not found")
			return
		}

		raw, err := httpapi.DecodeBody(r)
		if err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, version, "invalid json")
			return
		}

		c, ok := h.val.Contract(version)
		if !ok {
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		merged := httpapi.MergePatch(httpapi.MergeBase(c, clinicData(current, version)), raw)
		res, err := h.val.ValidateDirect(version, merged)
		if err != nil {
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		in := clinicInput(res.Data)
		if version == "v1" {
			// Los campos que v1 no ve no se tocan en un PATCH v1.
			in.Timezone = current.Timezone
			in.Emergency = current.Emergency
		}

		updated, err := h.svc.Update(r.Context(), current.ID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
			case errors.Is(err, ErrNotFound):
				httpapi.WriteError(w, http.StatusNotFound, version, "clinic not found")
			default:
				h.log.Error().Err(err).Msg("clinics: update")
				httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			}
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, updated), res.Warnings)
	}
}

func (h *Handler) delete(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		if _, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "clinicID")); err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "clinic not found")
			return
		}

		if err := h.svc.Delete(r.Context(), chi.URLParam(r, "clinicID")); err != nil {
			h.log.Error().Err(err).Msg("clinics: delete")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) shape(version string, c Clinic) map[string]any {
	return h.val.Shape(version, clinicData(c, version))
}

func clinicInput(data map[string]any) Input {
	return Input{
		Name:      httpapi.Str(data, "name"),
		City:      httpapi.Str(data, "city"),
		Phone:     httpapi.Str(data, "phone"),
		Email:     httpapi.Str(data, "email"),
		Timezone:  httpapi.Str(data, "timezone"),
		Emergency: httpapi.Bool(data, "emergency"),
	}
}

func clinicData(c Clinic, version string) map[string]any {
	d := map[string]any{
		"id":         c.ID,
		"name":       c.Name,
		"city":       c.City,
		"created_by": c.CreatedBy,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	}
	if c.Phone != "" {
		d["phone"] = c.Phone
	}
	if c.Email != "" {
		d["email"] = c.Email
	}

	if version == "v1" {
		return d
	}

	if c.Timezone != "" {
		d["timezone"] = c.Timezone
	}
	d["emergency"] = c.Emergency
	return d
}
