// Package notify dispatches templated email on state transitions. Enqueue
// returns immediately; a single worker drains a bounded queue, attempts
// delivery once and records the outcome. Dispatch never blocks or fails the
// request that triggered it.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/projectify/backend/internal/mailer"
	"github.com/projectify/backend/internal/models"
)

type EventType string

const (
	EventWelcome             EventType = mailer.TemplateWelcome
	EventProjectApproved     EventType = mailer.TemplateProjectApproved
	EventApplicationApproved EventType = mailer.TemplateApplicationApproved
	EventApplicationRejected EventType = mailer.TemplateApplicationRejected
)

// Event is one notification to one recipient.
type Event struct {
	Type               EventType `json:"type"`
	Recipient          string    `json:"recipient"`
	UserName           string    `json:"user_name,omitempty"`
	ProjectName        string    `json:"project_name,omitempty"`
	ProjectDescription string    `json:"project_description,omitempty"`
	StartDate          time.Time `json:"start_date,omitempty"`
	EndDate            time.Time `json:"end_date,omitempty"`
}

const sendTimeout = 15 * time.Second

type Dispatcher struct {
	db     *gorm.DB
	sender mailer.Sender
	queue  chan Event
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(db *gorm.DB, sender mailer.Sender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		db:     db,
		sender: sender,
		queue:  make(chan Event, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Enqueue hands an event to the worker without blocking. A full queue drops
// the event; the drop is logged and recorded, never surfaced to the caller.
func (d *Dispatcher) Enqueue(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		slog.Warn("notification queue full, dropping event",
			"event", ev.Type, "recipient", ev.Recipient)
		d.record(ev, "", models.NotificationDropped, "queue full")
	}
}

// Stop closes intake and waits for the worker to drain the queue.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	subject, body, err := mailer.Render(string(ev.Type), mailer.TemplateData{
		UserName:           ev.UserName,
		ProjectName:        ev.ProjectName,
		ProjectDescription: ev.ProjectDescription,
		StartDate:          ev.StartDate,
		EndDate:            ev.EndDate,
	})
	if err != nil {
		slog.Error("notification render failed", "event", ev.Type, "error", err)
		d.record(ev, "", models.NotificationFailed, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, mailer.Message{To: ev.Recipient, Subject: subject, HTML: body}); err != nil {
		slog.Error("notification delivery failed",
			"event", ev.Type, "recipient", ev.Recipient, "error", err)
		d.record(ev, subject, models.NotificationFailed, err.Error())
		return
	}

	d.record(ev, subject, models.NotificationSent, "")
}

func (d *Dispatcher) record(ev Event, subject, status, errText string) {
	entry := models.NotificationLog{
		ID:        uuid.New(),
		Event:     string(ev.Type),
		Recipient: ev.Recipient,
		Subject:   subject,
		Status:    status,
		Error:     errText,
	}
	if b, err := json.Marshal(ev); err == nil {
		entry.Payload = datatypes.JSON(b)
	}

	if err := d.db.Create(&entry).Error; err != nil {
		slog.Error("failed to record notification outcome", "event", ev.Type, "error", err)
	}
}
