package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/models"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/store"
)

// Notifier schedules a post-submission confirmation. Implementations must
// not block and must not surface errors to the caller.
type Notifier interface {
	Enqueue(rec models.Feedback)
}

// FeedbackHandler serves the public feedback submission endpoint. The store
// and notifier are injected so tests can run against isolated instances.
type FeedbackHandler struct {
	Store    *store.Store
	Notifier Notifier
	Logger   *logrus.Logger

	validate *validator.Validate
}

func NewFeedbackHandler(s *store.Store, n Notifier, logger *logrus.Logger) *FeedbackHandler {
	v := validator.New()
	// Report errors under the json field names the client actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &FeedbackHandler{Store: s, Notifier: n, Logger: logger, validate: v}
}

// Submit handles POST /feedback/submit. A valid request appends exactly one
// record and schedules exactly one confirmation; an invalid one touches
// neither the store nor the notifier.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, validationFields(err))
		return
	}

	rec := h.Store.Append(req.Email, req.Message)
	h.Notifier.Enqueue(rec)

	h.Logger.WithFields(logrus.Fields{
		"feedback_id": rec.ID,
		"email":       rec.Email,
	}).Info("feedback submitted")

	writeJSON(w, http.StatusCreated, rec)
}

func validationFields(err error) map[string]string {
	fields := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["body"] = "invalid input"
		return fields
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required and must not be empty"
		case "email":
			fields[fe.Field()] = "must be a valid email address"
		case "max":
			fields[fe.Field()] = "must be at most " + fe.Param() + " characters"
		default:
			fields[fe.Field()] = "is invalid"
		}
	}
	return fields
}
