package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

type matchingService interface {
	Open(ctx context.Context, actor domain.Actor, productID uuid.UUID) (*domain.Matching, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error)
	Keep(ctx context.Context, actor domain.Actor, matchingID, placeID uuid.UUID) (*domain.Matching, error)
	HostAcceptRequest(ctx context.Context, actor domain.Actor, matchingID uuid.UUID, accepted bool) (*domain.Matching, error)
	GuestConfirmStorage(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error)
	CompleteStorage(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error)
	CancelRequest(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error)
	Withdraw(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) error
}

// MatchingHandler serves the matching lifecycle endpoints.
type MatchingHandler struct {
	svc matchingService
	log *slog.Logger
}

// NewMatchingHandler creates a MatchingHandler.
func NewMatchingHandler(svc matchingService, logger *slog.Logger) *MatchingHandler {
	return &MatchingHandler{svc: svc, log: logger.With("handler", "matching")}
}

type openRequest struct {
	ProductID uuid.UUID `json:"productId"`
}

type keepRequest struct {
	PlaceID uuid.UUID `json:"placeId"`
}

type acceptRequest struct {
	Accepted *bool `json:"accepted"`
}

type matchingResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	PlaceID        *string   `json:"placeId"`
	Status         string    `json:"status"`
	GuestID        string    `json:"guestId"`
	HostID         *string   `json:"hostId"`
	ProductName    string    `json:"productName"`
	PlaceName      string    `json:"placeName,omitempty"`
	Distance       int       `json:"distance"`
	HostCompleted  bool      `json:"hostCompleted"`
	GuestCompleted bool      `json:"guestCompleted"`
	StartDate      *string   `json:"startDate"`
	ExpiryDate     *string   `json:"expiryDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toMatchingResponse(m *domain.Matching) matchingResponse {
	resp := matchingResponse{
		ID:             m.ID.String(),
		ProductID:      m.ProductID.String(),
		Status:         m.Status.String(),
		GuestID:        m.GuestID.String(),
		ProductName:    m.ProductName,
		PlaceName:      m.PlaceName,
		Distance:       m.Distance,
		HostCompleted:  m.HostCompleted,
		GuestCompleted: m.GuestCompleted,
		StartDate:      formatDate(m.StartDate),
		ExpiryDate:     formatDate(m.ExpiryDate),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.PlaceID != nil {
		s := m.PlaceID.String()
		resp.PlaceID = &s
	}
	if m.HostID != uuid.Nil {
		s := m.HostID.String()
		resp.HostID = &s
	}
	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// Open handles POST /api/v1/matchings.
func (h *MatchingHandler) Open(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req openRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.Open(r.Context(), actor, req.ProductID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMatchingResponse(m))
}

// Get handles GET /api/v1/matchings/{id}.
func (h *MatchingHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error) {
		return h.svc.Get(ctx, actor, id)
	})
}

// Keep handles POST /api/v1/matchings/{id}/keep.
func (h *MatchingHandler) Keep(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error) {
		var req keepRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return nil, err
		}
		return h.svc.Keep(ctx, actor, id, req.PlaceID)
	})
}

// Accept handles POST /api/v1/matchings/{id}/accept.
func (h *MatchingHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error) {
		var req acceptRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return nil, err
		}
		if req.Accepted == nil {
			return nil, domain.NewValidationError("accepted", "required")
		}
		return h.svc.HostAcceptRequest(ctx, actor, id, *req.Accepted)
	})
}

// Confirm handles POST /api/v1/matchings/{id}/confirm.
func (h *MatchingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.GuestConfirmStorage)
}

// Complete handles POST /api/v1/matchings/{id}/complete.
func (h *MatchingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.CompleteStorage)
}

// Cancel handles POST /api/v1/matchings/{id}/cancel.
func (h *MatchingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.CancelRequest)
}

// Withdraw handles DELETE /api/v1/matchings/{id}.
func (h *MatchingHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Withdraw(r.Context(), actor, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type matchingOp func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error)

// transition resolves caller and path id, runs op and writes the matching.
func (h *MatchingHandler) transition(w http.ResponseWriter, r *http.Request, op matchingOp) {
	actor, err := actorFrom(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := op(r.Context(), actor, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchingResponse(m))
}
