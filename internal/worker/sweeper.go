package worker

import (
	"context"
	"fmt"
	"log/slog"

	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically force-cancels reservations stuck in PENDING past the
// grace window, returning their capacity to the pool.
type Sweeper struct {
	commands commands.SweeperCommands
	clock    clock.Clock
	cfg      config.SweeperConfig
	cron     *cron.Cron
}

func NewSweeper(cmds commands.SweeperCommands, clk clock.Clock, cfg config.SweeperConfig) *Sweeper {
	return &Sweeper{
		commands: cmds,
		clock:    clk,
		cfg:      cfg,
		cron:     cron.New(),
	}
}

func (s *Sweeper) Start() error {
	spec := fmt.Sprintf("@every %s", s.cfg.Interval)
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("expiry sweeper started",
		"interval", s.cfg.Interval.String(),
		"grace_window", s.cfg.GraceWindow.String())
	return nil
}

func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("expiry sweeper stopped")
}

// Run executes one sweep pass. Exported so it can be triggered directly with
// a controlled clock.
func (s *Sweeper) Run() {
	cutoff := s.clock.Now().Add(-s.cfg.GraceWindow)

	report, err := s.commands.Sweep(context.Background(), cutoff)
	if err != nil {
		slog.Error("sweep pass failed", "error", err.Error())
		return
	}

	if report.Candidates > 0 {
		slog.Info("sweep pass completed",
			"candidates", report.Candidates,
			"swept", report.Swept,
			"failed", len(report.Failed))
	}
}
