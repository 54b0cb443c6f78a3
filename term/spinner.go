package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonwraymond/execwrap/wrap"
)

// DefaultFrames is the frame cycle painted by a spinner.
var DefaultFrames = []string{"|", "/", "-", "\\"}

// DefaultFrameInterval is the delay between repaints.
const DefaultFrameInterval = 100 * time.Millisecond

// SpinnerConfig configures a console spinner.
type SpinnerConfig struct {
	// Writer receives the frames.
	// Default: os.Stderr
	Writer io.Writer

	// Frames is the repeating frame cycle.
	// Default: DefaultFrames
	Frames []string

	// Interval is the delay between repaints.
	// Default: 100 milliseconds
	Interval time.Duration

	// Message is painted after each frame.
	Message string
}

// Spinner animates a frame cycle on a writer while work is in flight. The
// running state is an explicit cell: an atomic flag paired with a done
// channel and a WaitGroup join, so Stop returns only after the frame
// goroutine has exited and the line is cleared. A stopped spinner can be
// started again.
type Spinner struct {
	config SpinnerConfig

	// mu serializes Start/Stop transitions; the paint goroutine never takes it.
	mu      sync.Mutex
	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSpinner creates a spinner.
func NewSpinner(config ...SpinnerConfig) *Spinner {
	cfg := SpinnerConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if len(cfg.Frames) == 0 {
		cfg.Frames = DefaultFrames
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultFrameInterval
	}

	return &Spinner{config: cfg}
}

// Start begins painting frames. Starting a running spinner returns
// ErrAlreadyRunning.
func (s *Spinner) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return ErrAlreadyRunning
	}

	s.done = make(chan struct{})
	s.wg.Add(1)
	s.running.Store(true)
	go s.paint(s.done)
	return nil
}

// Stop halts the animation, clears the line, and joins the frame goroutine.
// Stopping a stopped spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return
	}

	close(s.done)
	s.wg.Wait()
	s.running.Store(false)
}

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool {
	return s.running.Load()
}

func (s *Spinner) paint(done chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	frame := 0
	s.paintFrame(frame)
	frame++

	for {
		select {
		case <-done:
			// Clear the line before handing the cursor back.
			fmt.Fprint(s.config.Writer, "\r\x1b[K")
			return
		case <-ticker.C:
			s.paintFrame(frame)
			frame++
		}
	}
}

func (s *Spinner) paintFrame(frame int) {
	glyph := s.config.Frames[frame%len(s.config.Frames)]
	if s.config.Message != "" {
		fmt.Fprintf(s.config.Writer, "\r%s %s", glyph, s.config.Message)
		return
	}
	fmt.Fprintf(s.config.Writer, "\r%s", glyph)
}

// WithSpinner returns a middleware that animates the spinner while the work
// runs. The spinner stops on every exit path. A spinner that is already
// animating fails the invocation with ErrAlreadyRunning without running the
// work.
func WithSpinner[T any](s *Spinner) wrap.Middleware[T] {
	return func(work wrap.Work[T]) wrap.Work[T] {
		return func(ctx context.Context) (T, error) {
			if err := s.Start(); err != nil {
				var zero T
				return zero, err
			}
			defer s.Stop()

			return work(ctx)
		}
	}
}
