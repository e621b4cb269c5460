package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/handlers"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/models"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/notify"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/store"
)

func newTestServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	s := store.New()
	mailer := notify.NewMailer(logger)
	t.Cleanup(mailer.Close)

	r := chi.NewRouter()
	SetupRoutes(r, handlers.NewFeedbackHandler(s, mailer, logger), handlers.NewAdminHandler(s, token))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitThenListRoundTrip(t *testing.T) {
	srv := newTestServer(t, "tok")

	resp, err := http.Post(srv.URL+"/feedback/submit", "application/json",
		strings.NewReader(`{"email": "a@b.com", "message": "hello"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rec models.Feedback
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, int64(1), rec.ID)

	listResp, err := http.Get(srv.URL + "/admin/feedbacks?token=tok")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var list models.FeedbackListResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "a@b.com", list.Items[0].Email)
}

func TestRouteMethodsAreRestricted(t *testing.T) {
	srv := newTestServer(t, "tok")

	resp, err := http.Get(srv.URL + "/feedback/submit")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/admin/feedbacks?token=tok", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
