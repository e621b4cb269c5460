package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/models"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/store"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// AdminHandler serves the admin feedback dashboard. Access requires the
// shared admin token as a ?token= query parameter; the configured value is
// never echoed in responses or logs.
type AdminHandler struct {
	Store *store.Store
	Token string
}

func NewAdminHandler(s *store.Store, token string) *AdminHandler {
	return &AdminHandler{Store: s, Token: token}
}

// ListFeedbacks handles GET /admin/feedbacks. Auth is checked before any
// parameter parsing or store access. The email filter is a case-insensitive
// exact match; offset/limit select the page and are echoed back with the
// filtered total.
func (h *AdminHandler) ListFeedbacks(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.Token)) != 1 {
		writeError(w, http.StatusUnauthorized, "invalid admin token")
		return
	}

	q := r.URL.Query()

	offset := 0
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeValidationError(w, map[string]string{"offset": "must be a non-negative integer"})
			return
		}
		offset = n
	}

	limit := defaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeValidationError(w, map[string]string{"limit": "must be a positive integer"})
			return
		}
		if n > maxLimit {
			writeValidationError(w, map[string]string{"limit": "must be at most " + strconv.Itoa(maxLimit)})
			return
		}
		limit = n
	}

	items, total := h.Store.List(q.Get("email"), offset, limit)

	writeJSON(w, http.StatusOK, models.FeedbackListResponse{
		Items:  items,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}
