package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter
// queuing. Loot notifications feed external sinks (history, statistics, UI)
// whose handlers may fail transiently; a dropped loot.obtained event is a
// permanent hole in the user's history, so failed publishes retry in the
// background and land in a dead-letter file when exhausted.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // Protects file writes
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryDelaySeconds * time.Second
	}
	if config.DeadLetterPath == "" {
		config.DeadLetterPath = DefaultDeadLetterPath
	}

	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event. On failure it initiates a background
// retry loop and returns nil immediately: callers are decoupled from the
// retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	slog.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	// Detached from the caller's context: the originating request may be
	// long gone by the time a retry lands.
	go p.retryLoop(event)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	ctx := context.Background()

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(p.config.RetryDelay * time.Duration(attempt))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			slog.Info(LogMsgEventRetrySucceeded,
				"event_type", event.Type,
				"attempt", attempt)
			return
		}

		slog.Warn(LogMsgEventRetryFailed,
			"event_type", event.Type,
			"attempt", attempt,
			"error", err)
	}

	p.writeToDeadLetter(event)
}

// deadLetterEntry is the JSON line format of the dead-letter file.
type deadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if dir := filepath.Dir(p.config.DeadLetterPath); dir != "." {
		if err := os.MkdirAll(dir, DeadLetterDirPermissions); err != nil {
			slog.Error(LogMsgDeadLetterOpenErr, "error", err, "path", p.config.DeadLetterPath)
			return
		}
	}

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		slog.Error(LogMsgDeadLetterOpenErr, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	entry := deadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
	}

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		slog.Error(LogMsgDeadLetterWriteErr, "error", err)
		return
	}
	slog.Info(LogMsgDeadLetterWritten, "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
