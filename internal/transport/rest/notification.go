package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
	"github.com/heartmarshall/keepit-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, input notification.ListInput) ([]notification.View, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationResponse struct {
	ID           string    `json:"id"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"isRead"`
	HoursElapsed int       `json:"hoursElapsed"`
	CreatedAt    time.Time `json:"createdAt"`
}

// List handles GET /api/v1/notifications?unread=true&limit=50&offset=0.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]notificationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, notificationResponse{
			ID:           v.ID.String(),
			Message:      v.Message,
			IsRead:       v.IsRead,
			HoursElapsed: v.HoursElapsed,
			CreatedAt:    v.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func parseListInput(r *http.Request) (notification.ListInput, error) {
	q := r.URL.Query()
	var (
		input notification.ListInput
		errs  []domain.FieldError
	)

	if v := q.Get("unread"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "unread", Message: "must be a boolean"})
		}
		input.UnreadOnly = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}

	if len(errs) > 0 {
		return input, &domain.ValidationError{Errors: errs}
	}
	return input, nil
}

// UnreadCount handles GET /api/v1/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

// MarkRead handles PUT /api/v1/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead handles PUT /api/v1/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// Delete handles DELETE /api/v1/notifications/{id}.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
