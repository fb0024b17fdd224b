package services

import "github.com/projectify/backend/internal/notify"

// Notifier decouples the services from the dispatch queue. Enqueue never
// blocks and never reports delivery outcome.
type Notifier interface {
	Enqueue(ev notify.Event)
}
