package gateway

import (
	"context"
	"fmt"
	"time"

	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrGatewayTimeout = errs.New("payment gateway timed out")

// SimulatedGateway approves every capture whose details already passed
// structural validation. It exists so the payment coupling can be exercised
// end to end without a real acquirer; swapping in a real one only replaces
// this type.
type SimulatedGateway struct {
	timeout time.Duration
}

func NewSimulatedGateway(cfg config.GatewayConfig) commands.Gateway {
	return &SimulatedGateway{timeout: cfg.Timeout}
}

func (g *SimulatedGateway) Capture(ctx context.Context, req commands.CaptureRequest) (*commands.CaptureResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	select {
	case <-ctx.Done():
		return nil, errs.Mark(ctx.Err(), ErrGatewayTimeout)
	default:
	}

	return &commands.CaptureResult{
		Approved: true,
		Ref:      fmt.Sprintf("sim-%s", uuid.New()),
	}, nil
}
