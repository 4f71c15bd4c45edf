package mailer

import (
	"context"
	"log"
)

// Worker is the in-process queue used when no Pub/Sub project is configured.
// Events flow through a buffered channel to a single consumer goroutine.
type Worker struct {
	handler  *Handler
	events   chan Event
	stopChan chan struct{}
}

func NewWorker(handler *Handler, buffer int) *Worker {
	if buffer <= 0 {
		buffer = 64
	}
	return &Worker{
		handler:  handler,
		events:   make(chan Event, buffer),
		stopChan: make(chan struct{}),
	}
}

// Start begins the consumer loop.
func (w *Worker) Start() {
	go func() {
		log.Println("[Mailer] Worker started")
		for {
			select {
			case event := <-w.events:
				w.handler.Handle(context.Background(), event)
			case <-w.stopChan:
				log.Println("[Mailer] Worker stopped")
				return
			}
		}
	}()
}

// Stop terminates the consumer loop.
func (w *Worker) Stop() {
	close(w.stopChan)
}

// Enqueue hands an event to the worker without blocking. When the buffer is
// full the event is dropped with a log line; mail delivery is best-effort.
func (w *Worker) Enqueue(event Event) {
	select {
	case w.events <- event:
	default:
		log.Printf("[Mailer] Queue full, dropping %s event for %s", event.Kind, event.Email)
	}
}
