// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSyncAlreadyRunning = errors.New("sincronização já em andamento")

// SyncService é uma rotina agendada que também pode ser disparada manualmente
type SyncService interface {
	Start(ctx context.Context) error
	TriggerManualSync() error
	GetStatus() map[string]any
}

// syncState controla a execução exclusiva de uma rotina e guarda o resultado da última execução
type syncState struct {
	mu                  sync.Mutex
	running             bool
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

// begin marca a rotina como em execução; retorna false se já houver uma execução ativa
func (s *syncState) begin(runID string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}

	s.running = true
	s.lastRunID = runID
	s.lastSyncStartedAt = now
	return true
}

func (s *syncState) finish(now time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastSyncCompletedAt = now
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *syncState) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *syncState) snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"running":                s.running,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
	}
}
