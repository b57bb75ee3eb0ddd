// ABOUTME: Tests for the import status poller
// ABOUTME: Covers terminal stops, transport error handling, and cancellation
package importer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/api"
	"calldeck/models"
)

// scriptedFetch returns the given statuses in order, then repeats the last.
func scriptedFetch(statuses ...*models.ImportStatus) StatusFunc {
	var calls atomic.Int32
	return func(ctx context.Context) (*models.ImportStatus, error) {
		n := int(calls.Add(1)) - 1
		if n >= len(statuses) {
			n = len(statuses) - 1
		}
		return statuses[n], nil
	}
}

func TestPoller_StopsOnCompleted(t *testing.T) {
	fetch := scriptedFetch(
		&models.ImportStatus{Status: models.ImportStatusProcessing, ProcessedRows: 50, TotalRows: 200},
		&models.ImportStatus{Status: models.ImportStatusCompleted, ProcessedRows: 200, TotalRows: 200},
	)
	p := New(fetch, time.Millisecond)

	var updates []Progress
	for prog := range p.Run(context.Background()) {
		updates = append(updates, prog)
	}

	require.Len(t, updates, 2)
	assert.Equal(t, 25.0, updates[0].Percent)
	assert.False(t, updates[0].Done())
	assert.Equal(t, 100.0, updates[1].Percent)
	assert.True(t, updates[1].Done())
}

func TestPoller_StopsOnFailed(t *testing.T) {
	fetch := scriptedFetch(
		&models.ImportStatus{Status: models.ImportStatusFailed, ProcessedRows: 10, TotalRows: 40},
	)
	p := New(fetch, time.Millisecond)

	final, err := p.Wait(context.Background(), nil)
	require.NoError(t, err, "a failed import is a result, not a polling error")
	assert.Equal(t, models.ImportStatusFailed, final.Status)
}

func TestPoller_TransportErrorIsTerminal(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context) (*models.ImportStatus, error) {
		calls.Add(1)
		return nil, &api.TransportError{Err: errors.New("connection refused")}
	}
	p := New(fetch, time.Millisecond)

	_, err := p.Wait(context.Background(), nil)
	var transportErr *api.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, int32(1), calls.Load(), "no retry after a transport failure")
}

func TestPoller_CancellationStopsPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetch := scriptedFetch(
		&models.ImportStatus{Status: models.ImportStatusProcessing, TotalRows: 100},
	)
	p := New(fetch, time.Millisecond)

	updates := p.Run(ctx)
	<-updates // first poll
	cancel()

	for range updates {
		// drain until the goroutine closes the channel
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestPoller_WaitReportsIntermediateUpdates(t *testing.T) {
	fetch := scriptedFetch(
		&models.ImportStatus{Status: models.ImportStatusProcessing, ProcessedRows: 1, TotalRows: 4},
		&models.ImportStatus{Status: models.ImportStatusProcessing, ProcessedRows: 2, TotalRows: 4},
		&models.ImportStatus{Status: models.ImportStatusCompleted, ProcessedRows: 4, TotalRows: 4},
	)
	p := New(fetch, time.Millisecond)

	var percents []float64
	final, err := p.Wait(context.Background(), func(prog Progress) {
		percents = append(percents, prog.Percent)
	})
	require.NoError(t, err)
	assert.Equal(t, models.ImportStatusCompleted, final.Status)
	assert.Equal(t, []float64{25, 50, 100}, percents)
}

func TestPoller_ZeroRowImportReportsZeroPercent(t *testing.T) {
	status := &models.ImportStatus{Status: models.ImportStatusProcessing, TotalRows: 0}
	assert.Equal(t, 0.0, status.Percent())
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := New(nil, 0)
	assert.Equal(t, 2*time.Second, p.interval)
}
