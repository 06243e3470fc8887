// Package health reports whether the active store is reachable.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/chessacademy-server/internal/model"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Check is the result of one checker.
type Check struct {
	Name     string        `json:"name"`
	Status   Status        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Report is the combined result of all registered checkers.
type Report struct {
	Status    Status           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
	Version   string           `json:"version,omitempty"`
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

type Checker interface {
	Check(ctx context.Context) Check
}

type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	version  string
	now      func() time.Time
}

func NewService(version string) *Service {
	return &Service{
		checkers: make(map[string]Checker),
		version:  version,
		now:      time.Now,
	}
}

func (s *Service) RegisterChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// CheckHealth runs all checkers. One failing checker makes the report unhealthy.
func (s *Service) CheckHealth(ctx context.Context) Report {
	s.mu.RLock()
	checkers := make(map[string]Checker, len(s.checkers))
	for name, checker := range s.checkers {
		checkers[name] = checker
	}
	s.mu.RUnlock()

	checks := make(map[string]Check, len(checkers))
	overall := StatusHealthy
	for name, checker := range checkers {
		check := checker.Check(ctx)
		checks[name] = check
		if check.Status != StatusHealthy {
			overall = StatusUnhealthy
		}
	}

	return Report{
		Status:    overall,
		Timestamp: s.now().UTC(),
		Checks:    checks,
		Version:   s.version,
	}
}

// Pinger is implemented by the postgres connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// StorageProbe pings a flat-file storage by asking whether key exists.
func StorageProbe(storage model.Storage, key string) PingFunc {
	return func(ctx context.Context) error {
		_, err := storage.Exists(ctx, key)
		return err
	}
}

// StoreChecker checks the active persistence backend.
type StoreChecker struct {
	name    string
	pinger  Pinger
	timeout time.Duration
}

func NewStoreChecker(name string, pinger Pinger, timeout time.Duration) *StoreChecker {
	return &StoreChecker{name: name, pinger: pinger, timeout: timeout}
}

func (c *StoreChecker) Check(ctx context.Context) Check {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	err := c.pinger.Ping(ctx)
	duration := time.Since(start)

	if err != nil {
		return Check{
			Name:     c.name,
			Status:   StatusUnhealthy,
			Message:  fmt.Sprintf("store ping failed: %v", err),
			Duration: duration,
		}
	}
	return Check{
		Name:     c.name,
		Status:   StatusHealthy,
		Message:  "store reachable",
		Duration: duration,
	}
}
