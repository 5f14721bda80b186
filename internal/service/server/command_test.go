package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestRunRejectsBadTimezone verifies startup fails on an unresolvable default
// timezone.
func TestRunRejectsBadTimezone(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		ConfigPath:      "does-not-exist.yaml",
		DefaultTimezone: "Mars/Olympus_Mons",
	})
	require.Error(t, err)
}

// TestRunStopsOnCancel verifies the server starts on an ephemeral port and
// shuts down cleanly when the context is canceled.
func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)

	go func() {
		errCh <- Run(ctx, &Options{
			ConfigPath:    "does-not-exist.yaml",
			ListenAddress: "127.0.0.1:0",
		})
	}()

	// Give the listener a moment to come up before asking it to stop.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
