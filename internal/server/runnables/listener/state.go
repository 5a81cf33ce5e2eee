package listener

import "context"

// States reported by the underlying go-supervisor HTTP server
const (
	StatusNew      = "New"
	StatusBooting  = "Booting"
	StatusRunning  = "Running"
	StatusStopping = "Stopping"
	StatusStopped  = "Stopped"
	StatusError    = "Error"
	StatusUnknown  = "Unknown"
)

// GetState returns the current state of the server
func (r *Runner) GetState() string {
	if r.server == nil {
		return StatusUnknown
	}
	return r.server.GetState()
}

// IsReady reports whether the server is accepting connections
func (r *Runner) IsReady() bool {
	if r.server == nil {
		return false
	}
	return r.server.IsReady()
}

// GetStateChan returns a channel that emits state changes
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	if r.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return r.server.GetStateChan(ctx)
}
