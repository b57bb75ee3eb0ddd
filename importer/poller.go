// ABOUTME: Cancellable status poller for async contact imports
// ABOUTME: Stops on terminal status, transport error, or context cancellation
package importer

import (
	"context"
	"errors"
	"time"

	"calldeck/api"
	"calldeck/models"
)

// StatusFunc fetches the current import status. In production this is
// Client.ImportStatus; tests substitute a fake.
type StatusFunc func(ctx context.Context) (*models.ImportStatus, error)

// Progress is one poll result delivered to the caller.
type Progress struct {
	Status  *models.ImportStatus
	Percent float64
	Err     error
}

// Done reports whether this is the final update.
func (p Progress) Done() bool {
	return p.Err != nil || (p.Status != nil && p.Status.Terminal())
}

// Poller checks an import's status on a fixed interval. Teardown is
// structural: cancel the context and the goroutine exits, no timer cleanup
// by convention.
type Poller struct {
	fetch    StatusFunc
	interval time.Duration
}

func New(fetch StatusFunc, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Poller{fetch: fetch, interval: interval}
}

// Run polls until a terminal state and sends each update on the returned
// channel, closing it when done. A transport error during polling is
// treated as terminal failure, not an infinite-retry condition; other
// errors (server, auth) terminate the same way with Err set.
func (p *Poller) Run(ctx context.Context) <-chan Progress {
	updates := make(chan Progress, 1)

	go func() {
		defer close(updates)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			status, err := p.fetch(ctx)
			if err != nil {
				updates <- Progress{Err: terminalError(err)}
				return
			}

			prog := Progress{Status: status, Percent: status.Percent()}
			select {
			case updates <- prog:
			case <-ctx.Done():
				return
			}
			if status.Terminal() {
				return
			}
		}
	}()

	return updates
}

// Wait runs the poller to completion and returns the final status. Used by
// the CLI, which has no use for intermediate updates beyond printing them
// through onUpdate (may be nil).
func (p *Poller) Wait(ctx context.Context, onUpdate func(Progress)) (*models.ImportStatus, error) {
	var last *models.ImportStatus
	for prog := range p.Run(ctx) {
		if onUpdate != nil {
			onUpdate(prog)
		}
		if prog.Err != nil {
			return last, prog.Err
		}
		last = prog.Status
	}
	if err := ctx.Err(); err != nil {
		return last, err
	}
	if last == nil {
		return nil, errors.New("import polling produced no status")
	}
	return last, nil
}

// terminalError keeps the transport-vs-server distinction while marking the
// poll as over.
func terminalError(err error) error {
	var transport *api.TransportError
	if errors.As(err, &transport) {
		return transport
	}
	return err
}
