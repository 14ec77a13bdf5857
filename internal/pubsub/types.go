package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventIngestFile         EventType = "ingest-file"
	EventReconcileRequested EventType = "reconcile-requested"
	EventReconcileCompleted EventType = "reconcile-completed"
)
