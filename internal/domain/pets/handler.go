package pets

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"vetd/internal/httpapi"
	"vetd/internal/middleware"
)

// Handler publica el módulo de mascotas bajo una versión del API. El
// mismo Handler se monta en /api/v1 y /api/v2; la versión llega como
// parámetro de registro y decide contrato, forma pública y fallback.
type Handler struct {
	svc *Service
	val *httpapi.Validator
	log zerolog.Logger
}

func NewHandler(svc *Service, val *httpapi.Validator, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, version string) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", h.create(version))
		pr.Get("/", h.list(version))
		pr.Get("/{petID}", h.get(version))
		pr.Patch("/{petID}", h.update(version))
		pr.Delete("/{petID}", h.delete(version))
	})
}

// create godoc
// @Summary Registrar mascota
// @Description Crea una mascota del usuario autenticado. El body se valida contra el contrato de la versión de la ruta; un payload con forma v1 enviado a v2 pasa por el fallback y puede migrar solo.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body map[string]any true "Mascota según el contrato de la versión"
// @Success 201 {object} apiversion.Envelope
// @Failure 400 {object} apiversion.Envelope "JSON inválido"
// @Failure 401 {object} apiversion.Envelope
// @Failure 422 {object} apiversion.Envelope "Errores de validación de campos"
// @Router /v2/pets [post]
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
			h.log.Error().Err(err).Msg("pets: contrato sin registrar")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		p, err := h.svc.Create(r.Context(), userID, petInput(res.Data))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
				return
			}
			h.log.Error().Err(err).Msg("pets: create")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		httpapi.WriteData(w, http.StatusCreated, version, h.shape(version, p), res.Warnings)
	}
}

// list godoc
// @Summary Listar mis mascotas
// @Description Lista paginada de las mascotas del usuario autenticado. Filtro opcional por especie.
// @Tags pets
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Param per_page query int false "Tamaño de página (máx 100, default 20)"
// @Param species query string false "Filtrar por especie"
// @Success 200 {object} apiversion.ListEnvelope
// @Failure 401 {object} apiversion.Envelope
// @Router /v2/pets [get]
func (h *Handler) list(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		pg := httpapi.ParsePagination(r)
		items, total, err := h.svc.List(r.Context(), ListFilter{
			OwnerUserID: userID,
			Species:     r.URL.Query().Get("species"),
			Limit:       pg.PerPage,
			Offset:      pg.Offset(),
		})
		if err != nil {
			h.log.Error().Err(err).Msg("pets: list")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, p := range items {
			out = append(out, h.shape(version, p))
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

		p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "pet not found")
			return
		}
		if p.OwnerUserID != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, p), nil)
	}
}

func (h *Handler) update(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		current, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "pet not found")
			return
		}
		if current.OwnerUserID != userID {
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

		// PATCH real: el body se mezcla con el estado persistido y el
		// documento completo se valida contra el contrato de la versión.
		merged := httpapi.MergePatch(httpapi.MergeBase(c, petData(current, version)), raw)
		res, err := h.val.ValidateDirect(version, merged)
		if err != nil {
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		in := petInput(res.Data)
		if version == "v1" {
			// Los campos que v1 no ve no se tocan en un PATCH v1.
			in.WeightKg = current.WeightKg
			in.Microchip = current.Microchip
			in.DeceasedDate = current.DeceasedDate
			in.Temperament = current.Temperament
		}

		updated, err := h.svc.Update(r.Context(), current.ID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
			case errors.Is(err, ErrNotFound):
				httpapi.WriteError(w, http.StatusNotFound, version, "pet not found")
			default:
				h.log.Error().Err(err).Msg("pets: update")
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

		p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "pet not found")
			return
		}
		if p.OwnerUserID != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			return
		}

		if err := h.svc.Delete(r.Context(), p.ID); err != nil {
			h.log.Error().Err(err).Msg("pets: delete")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) shape(version string, p Pet) map[string]any {
	return h.val.Shape(version, petData(p, version))
}

// petInput baja la data normalizada del contrato al input del servicio.
// Acepta las dos formas: notes (v1) y bio (v2) caen en el mismo campo.
func petInput(data map[string]any) Input {
	in := Input{
		Name:         httpapi.Str(data, "name"),
		Species:      httpapi.Str(data, "species"),
		Breed:        httpapi.Str(data, "breed"),
		Sex:          httpapi.Str(data, "sex"),
		Microchip:    httpapi.Str(data, "microchip"),
		Temperament:  httpapi.Str(data, "temperament"),
		WeightKg:     httpapi.Num(data, "weight_kg"),
		BirthDate:    httpapi.Date(data, "birth_date"),
		DeceasedDate: httpapi.Date(data, "deceased_date"),
	}
	in.Bio = httpapi.Str(data, "bio")
	if in.Bio == "" {
		in.Bio = httpapi.Str(data, "notes")
	}
	return in
}

// petData arma la forma pública de una mascota para la versión pedida:
// v1 expone notes, v2 expone bio y los campos nuevos. Los opcionales
// vacíos no viajan.
func petData(p Pet, version string) map[string]any {
	d := map[string]any{
		"id":            p.ID,
		"owner_user_id": p.OwnerUserID,
		"name":          p.Name,
		"species":       p.Species,
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
	if p.Breed != "" {
		d["breed"] = p.Breed
	}
	if p.Sex != "" {
		d["sex"] = p.Sex
	}
	if p.BirthDate != nil {
		d["birth_date"] = p.BirthDate.Format("2006-01-02")
	}

	if version == "v1" {
		if p.Bio != "" {
			d["notes"] = p.Bio
		}
		return d
	}

	if p.Bio != "" {
		d["bio"] = p.Bio
	}
	if p.WeightKg != nil {
		d["weight_kg"] = *p.WeightKg
	}
	if p.Microchip != "" {
		d["microchip"] = p.Microchip
	}
	if p.DeceasedDate != nil {
		d["deceased_date"] = p.DeceasedDate.Format("2006-01-02")
	}
	if p.Temperament != "" {
		d["temperament"] = p.Temperament
	}
	return d
}
