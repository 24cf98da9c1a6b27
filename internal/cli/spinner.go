package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// spinnerInterval is the time between animation frames.
const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a progress indicator on w until stopped or until its
// context is cancelled. On a file that is not a terminal it stays silent.
type Spinner struct {
	w       io.Writer
	message string
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	started bool
	stopped chan struct{}
}

// newSpinner creates a spinner writing to w that stops with ctx.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// animates reports whether w can show the animation.
func (s *Spinner) animates() bool {
	f, ok := s.w.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start begins the animation. Calling Start twice has no effect.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || !s.animates() {
		return
	}
	s.started = true

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), StyleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.cancel()
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.stopped
	}
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
