// Package notifier queues notification payloads for asynchronous delivery.
// The queue decouples request handling from the delivery collaborator:
// payloads are enqueued after the HTTP response is written and delivery
// failures never surface to the caller.
package notifier

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/CTF179/photocomp/internal/notification"
)

// sendTimeout is the max time allowed for a single delivery attempt.
const sendTimeout = 5 * time.Second

// Sender delivers a notification payload. Implemented by the external email
// subsystem; LogSender is the in-repo stand-in.
type Sender interface {
	Send(ctx context.Context, p notification.Payload) error
}

// Queue is a bounded asynchronous notification queue backed by a single
// worker goroutine. Enqueue never blocks the caller; when the buffer is full
// the payload is dropped with a log line, matching the best-effort delivery
// contract.
type Queue struct {
	sender Sender
	ch     chan notification.Payload
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewQueue creates a queue with the given buffer size and starts its worker.
// Call Close to drain and stop the worker.
func NewQueue(sender Sender, size int) *Queue {
	q := &Queue{
		sender: sender,
		ch:     make(chan notification.Payload, size),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

// Enqueue queues a payload for delivery. Nil-safe no-op after Close.
func (q *Queue) Enqueue(p notification.Payload) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	select {
	case q.ch <- p:
	default:
		log.Printf("notifier: queue full, dropping notification to %s", p.To)
	}
}

// Close stops accepting payloads, drains the queue, and waits for the
// worker to finish in-flight deliveries.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *Queue) run() {
	defer q.wg.Done()
	for p := range q.ch {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := q.sender.Send(ctx, p); err != nil {
			log.Printf("notifier: failed to send notification to %s: %v", p.To, err)
		}
		cancel()
	}
}

// LogSender logs outgoing notifications instead of delivering them.
type LogSender struct{}

// NewLogSender creates a sender that writes payloads to the process log.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the payload.
func (s *LogSender) Send(_ context.Context, p notification.Payload) error {
	log.Printf("notifier: to=%s subject=%q header=%q", p.To, p.Subject, p.Header)
	return nil
}
