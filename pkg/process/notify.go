package process

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NotifyOnSignals returns a context that is cancelled once one of sigs
// (SIGINT and SIGTERM by default) arrives. The shutdown functions run
// before the cancellation.
func (r *Runtime) NotifyOnSignals(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, sigs...)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			r.Shutdown()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
