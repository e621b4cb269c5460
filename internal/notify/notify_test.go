package notify

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/models"
)

func TestMailerLogsConfirmationWithRecordDetails(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := NewMailer(logger)

	m.Enqueue(models.Feedback{
		ID:          7,
		Email:       "user@example.com",
		Message:     "Great app!",
		SubmittedAt: time.Now(),
	})
	m.Close()

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].Data["feedback_id"])
	assert.Equal(t, "user@example.com", entries[0].Data["email"])
	assert.Contains(t, entries[0].Message, "simulated email")
}

func TestMailerDrainsQueueOnClose(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := NewMailer(logger)

	for i := int64(1); i <= 10; i++ {
		m.Enqueue(models.Feedback{ID: i, Email: "user@example.com"})
	}
	m.Close()

	assert.Len(t, hook.AllEntries(), 10)
}

func TestMailerCloseIsIdempotent(t *testing.T) {
	logger, _ := test.NewNullLogger()
	m := NewMailer(logger)

	m.Close()
	m.Close()
}

func TestMailerEnqueueAfterCloseDropsWithWarning(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := NewMailer(logger)
	m.Close()

	// A request still in flight during shutdown may enqueue after Close;
	// that must drop the notification, never crash
	m.Enqueue(models.Feedback{ID: 3, Email: "late@example.com"})

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(3), entries[0].Data["feedback_id"])
	assert.Contains(t, entries[0].Message, "mailer closed")
}

func TestMailerFullQueueDropsWithWarning(t *testing.T) {
	logger, hook := test.NewNullLogger()
	// No worker draining, so the one-slot buffer stays full
	m := &Mailer{
		logger: logger,
		queue:  make(chan models.Feedback, 1),
		done:   make(chan struct{}),
	}

	m.Enqueue(models.Feedback{ID: 1, Email: "first@example.com"})
	m.Enqueue(models.Feedback{ID: 2, Email: "second@example.com"})

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(2), entries[0].Data["feedback_id"])
	assert.Contains(t, entries[0].Message, "queue full")
}
