//go:build unit

package fake

import (
	"context"

	"courtbook/internal/usecase/commands"
)

// Gateway is a scriptable payment gateway. Set Approved/Err before the call;
// every capture request is recorded for assertions. OnCapture, when set, runs
// before the result is returned and can mutate shared state to simulate a
// write racing the gateway round trip.
type Gateway struct {
	Approved  bool
	Ref       string
	Err       error
	OnCapture func()
	Requests  []commands.CaptureRequest
}

func ApprovingGateway() *Gateway {
	return &Gateway{Approved: true, Ref: "sim-test-ref"}
}

func (g *Gateway) Capture(_ context.Context, req commands.CaptureRequest) (*commands.CaptureResult, error) {
	g.Requests = append(g.Requests, req)
	if g.OnCapture != nil {
		g.OnCapture()
	}
	if g.Err != nil {
		return nil, g.Err
	}
	return &commands.CaptureResult{Approved: g.Approved, Ref: g.Ref}, nil
}
