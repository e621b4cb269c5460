// Package notify simulates sending confirmation emails. Nothing leaves the
// process: the "delivery" is a structured log line. Failures here are
// observable only via logs and never reach the client, since the HTTP
// response has already been written by the time a notification runs.
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/models"
)

const queueSize = 64

// Mailer delivers simulated confirmation emails from a single background
// worker fed by a buffered channel, keeping delivery off the request path.
type Mailer struct {
	logger *logrus.Logger
	queue  chan models.Feedback

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func NewMailer(logger *logrus.Logger) *Mailer {
	m := &Mailer{
		logger: logger,
		queue:  make(chan models.Feedback, queueSize),
		done:   make(chan struct{}),
	}
	go m.run()
	return m
}

// Enqueue schedules a confirmation for rec. It never blocks the caller and
// never returns an error: if the queue is full or the mailer is already
// closed the notification is dropped with a warning, since it must not
// affect the already-sent response. The closed check and the send share the
// mutex with Close so Enqueue can never hit a closed channel.
func (m *Mailer) Enqueue(rec models.Feedback) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		m.dropWarn(rec, "mailer closed, dropping confirmation email")
		return
	}
	select {
	case m.queue <- rec:
	default:
		m.dropWarn(rec, "notification queue full, dropping confirmation email")
	}
}

// Close stops accepting work, lets the worker drain what is already queued
// and waits for it to finish. Safe to call more than once.
func (m *Mailer) Close() {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.queue)
	}
	m.mu.Unlock()
	<-m.done
}

func (m *Mailer) dropWarn(rec models.Feedback, msg string) {
	m.logger.WithFields(logrus.Fields{
		"feedback_id": rec.ID,
		"email":       rec.Email,
	}).Warn(msg)
}

func (m *Mailer) run() {
	defer close(m.done)
	for rec := range m.queue {
		m.send(rec)
	}
}

func (m *Mailer) send(rec models.Feedback) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithField("panic", r).Error("confirmation email simulation failed")
		}
	}()
	m.logger.WithFields(logrus.Fields{
		"feedback_id": rec.ID,
		"email":       rec.Email,
	}).Info("simulated email: sending feedback confirmation")
}
