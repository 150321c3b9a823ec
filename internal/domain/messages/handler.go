package messages

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"vetd/internal/httpapi"
	"vetd/internal/middleware"
)

// Handler publica mensajes bajo una versión del API. Solo sender y
// recipient ven un mensaje; el resto recibe 403.
type Handler struct {
	svc *Service
	val *httpapi.Validator
	log zerolog.Logger
}

func NewHandler(svc *Service, val *httpapi.Validator, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, version string) {
	r.Route("/messages", func(mr chi.Router) {
		mr.Post("/", h.create(version))
		mr.Get("/", h.list(version))
		mr.Get("/{messageID}", h.get(version))
		mr.Patch("/{messageID}", h.update(version))
		mr.Delete("/{messageID}", h.delete(version))
		mr.Post("/{messageID}/read", h.markRead(version))
	})
}

// create godoc
// @Summary Enviar mensaje
// @Description Crea un mensaje del usuario autenticado a otro usuario. El sender_id del body debe ser el usuario autenticado. En v2 el body admite hasta 2000 caracteres; un mensaje v1 más largo valida contra v1 vía fallback.
// @Tags messages
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body map[string]any true "Mensaje según el contrato de la versión"
// @Success 201 {object} apiversion.Envelope
// @Failure 401 {object} apiversion.Envelope
// @Failure 403 {object} apiversion.Envelope "El sender no es el usuario autenticado"
// @Failure 422 {object} apiversion.Envelope "Errores de validación de campos"
// @Router /v2/messages [post]
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
			h.log.Error().Err(err).Msg("messages: contrato sin registrar")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		in := messageInput(res.Data)
		if in.SenderID != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "sender_id must be the authenticated user")
			return
		}

		m, err := h.svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
				return
			}
			h.log.Error().Err(err).Msg("messages: create")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		httpapi.WriteData(w, http.StatusCreated, version, h.shape(version, m), res.Warnings)
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
			UserID:     userID,
			Category:   r.URL.Query().Get("category"),
			OnlyUnread: r.URL.Query().Get("unread") == "true",
			Limit:      pg.PerPage,
			Offset:     pg.Offset(),
		})
		if err != nil {
			h.log.Error().Err(err).Msg("messages: list")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, m := range items {
			out = append(out, h.shape(version, m))
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

		m, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "message not found")
			return
		}
		if m.SenderID != userID && m.RecipientID != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, m), nil)
	}
}

func (h *Handler) update(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		current, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "message not found")
			return
		}
		// Solo el sender edita su mensaje.
		if current.SenderID != userID {
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

		merged := httpapi.MergePatch(httpapi.MergeBase(c, messageData(current, version)), raw)
		res, err := h.val.ValidateDirect(version, merged)
		if err != nil {
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		if !res.Valid {
			httpapi.WriteValidationErrors(w, version, res.Errors)
			return
		}

		updated, err := h.svc.Update(r.Context(), current.ID, messageInput(res.Data))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpapi.WriteError(w, http.StatusBadRequest, version, err.Error())
			case errors.Is(err, ErrNotFound):
				httpapi.WriteError(w, http.StatusNotFound, version, "message not found")
			default:
				h.log.Error().Err(err).Msg("messages: update")
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

		m, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "message not found")
			return
		}
		if m.SenderID != userID && m.RecipientID != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			return
		}

		if err := h.svc.Delete(r.Context(), m.ID); err != nil {
			h.log.Error().Err(err).Msg("messages: delete")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// markRead godoc
// @Summary Marcar mensaje como leído
// @Description Marca el mensaje como leído. Solo el recipient puede; la operación es idempotente.
// @Tags messages
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param messageID path string true "ID del mensaje"
// @Success 200 {object} apiversion.Envelope
// @Failure 403 {object} apiversion.Envelope "El usuario no es el recipient"
// @Failure 404 {object} apiversion.Envelope
// @Router /v2/messages/{messageID}/read [post]
func (h *Handler) markRead(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			httpapi.WriteError(w, http.StatusUnauthorized, version, "unauthorized")
			return
		}

		m, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			httpapi.WriteError(w, http.StatusNotFound, version, "message not found")
			return
		}
		if m.RecipientID != userID {
			httpapi.WriteError(w, http.StatusForbidden, version, "forbidden")
			return
		}

		read, err := h.svc.MarkRead(r.Context(), m.ID)
		if err != nil {
			h.log.Error().Err(err).Msg("messages: mark read")
			httpapi.WriteError(w, http.StatusInternalServerError, version, "internal error")
			return
		}

		httpapi.WriteData(w, http.StatusOK, version, h.shape(version, read), nil)
	}
}

func (h *Handler) shape(version string, m Message) map[string]any {
	return h.val.Shape(version, messageData(m, version))
}

func messageInput(data map[string]any) Input {
	return Input{
		SenderID:    httpapi.Str(data, "sender_id"),
		RecipientID: httpapi.Str(data, "recipient_id"),
		Subject:     httpapi.Str(data, "subject"),
		Body:        httpapi.Str(data, "body"),
		Priority:    httpapi.Str(data, "priority"),
		Category:    httpapi.Str(data, "category"),
	}
}

func messageData(m Message, version string) map[string]any {
	d := map[string]any{
		"id":           m.ID,
		"sender_id":    m.SenderID,
		"recipient_id": m.RecipientID,
		"body":         m.Body,
		"priority":     m.Priority,
		"created_at":   m.CreatedAt,
		"updated_at":   m.UpdatedAt,
	}
	if m.Subject != "" {
		d["subject"] = m.Subject
	}

	if version == "v1" {
		return d
	}

	d["category"] = m.Category
	d["read"] = m.Read
	if m.ReadAt != nil {
		d["read_at"] = *m.ReadAt
	}
	return d
}
