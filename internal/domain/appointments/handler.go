package appointments

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"vetd/internal/httpapi"
	"vetd/internal/middleware"
)

// Handler publica citas bajo una versión del API. Cada usuario ve las
// citas que creó.
type Handler struct {
	svc *Service
	val *httpapi.Validator
	log zerolog.Logger
}

func NewHandler(svc *Service, val *httpapi.Validator, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, version string) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", h.create(version))
		ar.Get("/", h.list(version))
		ar.Get("/{appointmentID}", h.get(version))
		ar.Patch("/{appointmentID}", h.update(version))
		ar.Delete("/{appointmentID}", h.delete(version))
		ar.Post("/{appointmentID}/cancel", h.cancel(version))
	})
}

// create godoc
// @Summary Agendar cita
// @Description Crea una cita para una mascota con un veterinario. En v2 el clinic_id es obligatorio; un payload v1 sin clínica pasa por el fallback y la migración le pone la clínica default si está configurada.
// @Tags appointments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body map[string]any true "Cita según el contrato de la versión"
// @Success 201 {object} apiversion.Envelope
// @Failure 401 {object} apiversion.Envelope
// @Failure 422 {object} apiversion.Envelope "Errores de validación de campos"
// @Router /v2/appointments [post]
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
			h.log.Error().Err(err).Msg("appointments: contrato sin registrar")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		a, err := h.svc.Create(r.Context(), userID, apptInput(res.Data))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
				return
			}
			h.log.Error().Err(err).Msg("appointments: create")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		httpapi.WriteData(w, http.StatusCreated, version, h.shape(version, a), res.Warnings)
	}
}

func (h *Handler) list(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		pg := httpapi.ParsePagination(r)
		items, total, err := h.svc.List(r.Context(), ListFilter{
			CreatedBy: userID,
			PetID:     r.URL.Query().Get("pet_id"),
			VetID:     r.URL.Query().Get("vet_id"),
			Status:    Status(r.URL.Query().Get("status")),
			Limit:     pg.PerPage,
			Offset:    pg.Offset(),
		})
		if err != nil {
			h.log.Error().Err(err).Msg("appointments: list")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, a := range items {
			out = append(out, h.shape(version, a))
		}
		httpapi.WriteList(w, version, out, total, pg.Page, pg.PerPage)
	}
}

func (h *Handler) get(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		a, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "appointment not found")
			return
		}
		if a.CreatedBy != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, a), nil)
	}
}

func (h *Handler) update(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		current, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "appointment not found")
			return
		}
		if current.CreatedBy != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
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

		merged := httpapi.MergePatch(httpapi.MergeBase(c, apptData(current, version)), raw)
		res, err := h.val.ValidateDirect(version, merged)
		if err != nil {
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		in := apptInput(res.Data)
		if version == "v1" {
			// Los campos que v1 no ve no se tocan en un PATCH v1.
			in.ClinicID = current.ClinicID
			in.Status = string(current.Status)
			in.ReminderDate = current.ReminderDate
		}

		updated, err := h.svc.Update(r.Context(), current.ID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
			case errors.Is(err, ErrNotFound):
				httpapi.WriteError(w, http.StatusNotFound, version, "appointment not found")
			default:
				h.log.Error().Err(err).Msg("appointments: update")
				httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			}
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, updated), res.Warnings)
	}
}

func (h *Handler) delete(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		a, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "appointment not found")
			return
		}
		if a.CreatedBy != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			return
		}

		if err := h.svc.Delete(r.Context(), a.ID); err != nil {
			h.log.Error().Err(err).Msg("appointments: delete")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// cancel godoc
// @Summary Cancelar cita
// @Description Cancela una cita creada por el usuario autenticado. Idempotente: cancelar dos veces devuelve la misma cita. Una cita completada no se puede cancelar.
// @Tags appointments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param appointmentID path string true "ID de la cita"
// @Success 200 {object} apiversion.Envelope
// @Failure 403 {object} apiversion.Envelope
// @Failure 404 {object} apiversion.Envelope
// @Failure 409 {object} apiversion.Envelope "La cita ya fue completada"
// @Router /v2/appointments/{appointmentID}/cancel [post]
func (h *Handler) cancel(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		a, err := h.svc.Cancel(r.Context(), chi.URLParam(r, "appointmentID"), userID)
		if err != nil {
			switch {
			case errors.Is(err, ErrForbidden):
				httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			case errors.Is(err, ErrCompleted):
				httpapi.WriteError(w, http.StatusConflict, version, err.Error())
			case errors.Is(err, ErrInvalidInput):
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
			default:
				httpapi.WriteError(w, http.StatusNotFound, version, "appointment not found")
			}
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, a), nil)
	}
}

func (h *Handler) shape(version string, a Appointment) map[string]any {
	return h.val.Shape(version, apptData(a, version))
}

func apptInput(data map[string]any) Input {
	in := Input{
		PetID:        httpapi.Str(data, "pet_id"),
		VetID:        httpapi.Str(data, "vet_id"),
		ClinicID:     httpapi.Str(data, "clinic_id"),
		StartTime:    httpapi.Str(data, "start_time"),
		EndTime:      httpapi.Str(data, "end_time"),
		Reason:       httpapi.Str(data, "reason"),
		Status:       httpapi.Str(data, "status"),
		ReminderDate: httpapi.Date(data, "reminder_date"),
	}
	if d := httpapi.Date(data, "date"); d != nil {
		in.Date = *d
	}
	return in
}

func apptData(a Appointment, version string) map[string]any {
	d := map[string]any{
		"id":         a.ID,
		"pet_id":     a.PetID,
		"vet_id":     a.VetID,
		"date":       a.Date.Format("2006-01-02"),
		"start_time": a.StartTime,
		"end_time":   a.EndTime,
		"created_by": a.CreatedBy,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}
	if a.Reason != "" {
		d["reason"] = a.Reason
	}

	if version == "v1" {
		return d
	}

	if a.ClinicID != "" {
		d["clinic_id"] = a.ClinicID
	}
	d["status"] = string(a.Status)
	if a.ReminderDate != nil {
		d["reminder_date"] = a.ReminderDate.Format("2006-01-02")
	}
	if a.CancelledAt != nil {
		d["cancelled_at"] = *a.CancelledAt
	}
	return d
}
