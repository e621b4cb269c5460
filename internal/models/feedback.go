package models

import "time"

// Feedback is a single stored feedback submission. Records are immutable
// once created: there are no update or delete endpoints, and ids are never
// reused for the lifetime of the process.
type Feedback struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmitFeedbackRequest is the body of POST /feedback/submit.
type SubmitFeedbackRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=2000"`
}

// FeedbackListResponse is the body of GET /admin/feedbacks, echoing the
// pagination window back to the caller. Total counts the filtered set, not
// just the returned page.
type FeedbackListResponse struct {
	Items  []Feedback `json:"items"`
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}
