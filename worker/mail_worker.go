package worker

import (
	"context"
	"sync"

	"relivo-backend/models"
	"relivo-backend/services"
	"relivo-backend/utils/logger"
)

// MailWorker delivers rendered emails in the background. Jobs are enqueued
// after the triggering transaction commits; a delivery failure is logged and
// dropped, it never reaches the request that produced the job.
type MailWorker struct {
	mailer services.MailerInterface
	logger logger.Logger
	config *models.Config

	jobs     chan models.EmailJob
	StopChan chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	running bool
}

// NewMailWorker creates the dispatcher with a queue sized from config.
func NewMailWorker(cfg *models.Config, mailer services.MailerInterface, log logger.Logger) *MailWorker {
	size := cfg.MailQueueSize
	if size <= 0 {
		size = 64
	}
	return &MailWorker{
		mailer:   mailer,
		logger:   log,
		config:   cfg,
		jobs:     make(chan models.EmailJob, size),
		StopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Enqueue hands a job to the dispatcher without blocking. Returns false when
// the queue is full and the job was dropped.
func (w *MailWorker) Enqueue(job models.EmailJob) bool {
	select {
	case w.jobs <- job:
		return true
	default:
		return false
	}
}

// Start launches the dispatcher goroutine. Calling Start twice is a no-op.
func (w *MailWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Infof("Mail worker started (queue size %d)", cap(w.jobs))

	go func() {
		defer close(w.done)
		for {
			select {
			case job := <-w.jobs:
				w.deliver(job)
			case <-w.StopChan:
				// Drain what is already queued before exiting
				for {
					select {
					case job := <-w.jobs:
						w.deliver(job)
					default:
						return
					}
				}
			}
		}
	}()
}

func (w *MailWorker) deliver(job models.EmailJob) {
	ctx, cancel := context.WithTimeout(context.Background(), w.config.MailTimeout)
	defer cancel()

	if err := w.mailer.Send(ctx, job); err != nil {
		w.logger.Errorf("Failed to send email %q to %s: %v", job.Subject, job.To, err)
	}
}

// Stop signals the dispatcher and waits for queued jobs to drain.
func (w *MailWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.StopChan)
	<-w.done
	w.logger.Info("Mail worker stopped")
}

// IsRunning reports whether the dispatcher goroutine is active.
func (w *MailWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
