package vets

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"vetd/internal/httpapi"
	"vetd/internal/middleware"
)

// Handler publica veterinarios bajo una versión del API. El contrato v2
// es strict: un campo desconocido rechaza el payload y lo manda al
// fallback v1.
type Handler struct {
	svc *Service
	val *httpapi.Validator
	log zerolog.Logger
}

func NewHandler(svc *Service, val *httpapi.Validator, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, version string) {
	r.Route("/veterinarians", func(vr chi.Router) {
		vr.Post("/", h.create(version))
		vr.Get("/", h.list(version))
		vr.Get("/{vetID}", h.get(version))
		vr.Patch("/{vetID}", h.update(version))
		vr.Delete("/{vetID}", h.delete(version))
	})
}

func (h *Handler) create(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
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
			h.log.Error().Err(err).Msg("vets: contrato sin registrar")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		v, err := h.svc.Create(r.Context(), vetInput(res.Data))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
			case errors.Is(err, ErrConflict):
				httpapi.WriteError(w, http.StatusConflict, version, err.Error())
			default:
				h.log.Error().Err(err).Msg("vets: create")
				httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			}
			return
		}

		httpapi.WriteData(w, http.StatusCreated, version, h.shape(version, v), res.Warnings)
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
			Specialty: r.URL.Query().Get("specialty"),
			ClinicID:  r.URL.Query().Get("clinic_id"),
			Limit:     pg.PerPage,
			Offset:    pg.Offset(),
		})
		if err != nil {
			h.log.Error().Err(err).Msg("vets: list")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, v := range items {
			out = append(out, h.shape(version, v))
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

		v, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "veterinarian not found")
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, v), nil)
	}
}

func (h *Handler) update(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		current, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "veterinarian not found")
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

		merged := httpapi.MergePatch(httpapi.MergeBase(c, vetData(current, version)), raw)
		res, err := h.val.ValidateDirect(version, merged)
		if err != nil {
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		in := vetInput(res.Data)
		if version == "v1" {
			// Los campos que v1 no ve no se tocan en un PATCH v1.
			in.YearsExperience = current.YearsExperience
			in.ClinicID = current.ClinicID
		}

		updated, err := h.svc.Update(r.Context(), current.ID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
			case errors.Is(err, ErrConflict):
				httpapi.WriteError(w, http.StatusConflict, version, err.Error())
			case errors.Is(err, ErrNotFound):
				httpapi.WriteError(w, http.StatusNotFound, version, "veterinarian not found")
			default:
				h.log.Error().Err(err).Msg("vets: update")
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

		if _, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "vetID")); err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "veterinarian not found")
			return
		}

		if err := h.svc.Delete(r.Context(), chi.URLParam(r, "vetID")); err != nil {
			h.log.Error().Err(err).Msg("vets: delete")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) shape(version string, v Veterinarian) map[string]any {
	return h.val.Shape(version, vetData(v, version))
}

func vetInput(data map[string]any) Input {
	return Input{
		FirstName:       httpapi.Str(data, "first_name"),
		LastName:        httpapi.Str(data, "last_name"),
		Specialty:       httpapi.Str(data, "specialty"),
		LicenseNumber:   httpapi.Str(data, "license_number"),
		Email:           httpapi.Str(data, "email"),
		YearsExperience: httpapi.IntVal(data, "years_experience"),
		ClinicID:        httpapi.Str(data, "clinic_id"),
	}
}

func vetData(v Veterinarian, version string) map[string]any {
	d := map[string]any{
		"id":             v.ID,
		"first_name":     v.FirstName,
		"last_name":      v.LastName,
		"license_number": v.LicenseNumber,
		"created_at":     v.CreatedAt,
		"updated_at":     v.UpdatedAt,
	}
	if v.Specialty != "" {
		d["specialty"] = v.Specialty
	}
	if v.Email != "" {
		d["email"] = v.Email
	}

	if version == "v1" {
		return d
	}

	if v.YearsExperience != nil {
		d["years_experience"] = *v.YearsExperience
	}
	if v.ClinicID != "" {
		d["clinic_id"] = v.ClinicID
	}
	return d
}
