package bootstrap

import (
	"context"

	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/worker"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(startSweeper),
)

func NewSweeper(cmds commands.SweeperCommands, clk clock.Clock, cfg config.Config) *worker.Sweeper {
	return worker.NewSweeper(cmds, clk, cfg.Sweeper)
}

func startSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
