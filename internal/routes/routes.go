package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/handlers"
)

// SetupRoutes mounts the user and admin endpoints. Handlers carry their own
// dependencies; nothing here reaches for package-level state.
func SetupRoutes(r chi.Router, feedback *handlers.FeedbackHandler, admin *handlers.AdminHandler) {
	// User feedback routes
	r.Post("/feedback/submit", feedback.Submit)

	// Admin feedback dashboard routes
	r.Get("/admin/feedbacks", admin.ListFeedbacks)
}
