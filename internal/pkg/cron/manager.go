package cron

import (
	log "log/slog"

	"reeldine/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	reconcileJob *job.ReconcileCountersJob
}

func NewCronManager(reconcileJob *job.ReconcileCountersJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		reconcileJob: reconcileJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.reconcileJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
