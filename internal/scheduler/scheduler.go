package scheduler

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/internal/adapter"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/repository"
	"CivicPulseAPI/internal/scheduler/job"
	"CivicPulseAPI/internal/websocket"
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cfg    *config.AppConfig
	client *ent.Client
	cron   *cron.Cron
	sweeps *repository.SweepRepository
	hub    *websocket.Hub

	cancel context.CancelFunc
}

// New builds a scheduler. The hub is optional; the standalone scheduler
// binary passes nil and its sweeps simply skip event publication.
func New(cfg *config.AppConfig, client *ent.Client, redisAdapter *adapter.RedisAdapter, hub *websocket.Hub) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		client: client,
		cron:   cron.New(),
		sweeps: repository.NewSweepRepository(redisAdapter),
		hub:    hub,
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting Scheduler...")

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.registerJobs(ctx)

	s.cron.Start()
	slog.Info("Scheduler started successfully")
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) registerJobs(ctx context.Context) {
	_, err := s.cron.AddFunc(s.cfg.EscalationSweepCron, func() {
		slog.Info("Starting Escalation Sweep")
		if err := job.RunEscalationSweep(ctx, s.client, s.sweeps, s.cfg, s.hub); err != nil {
			slog.Error("Escalation Sweep failed", "error", err)
		} else {
			slog.Info("Escalation Sweep completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Escalation Sweep", "error", err)
	} else {
		slog.Info("Registered Escalation Sweep", "schedule", s.cfg.EscalationSweepCron)
	}

	_, err = s.cron.AddFunc(s.cfg.OverdueSweepCron, func() {
		slog.Info("Starting Overdue Sweep")
		if err := job.RunOverdueSweep(ctx, s.client, s.cfg); err != nil {
			slog.Error("Overdue Sweep failed", "error", err)
		} else {
			slog.Info("Overdue Sweep completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Overdue Sweep", "error", err)
	} else {
		slog.Info("Registered Overdue Sweep", "schedule", s.cfg.OverdueSweepCron)
	}
}
