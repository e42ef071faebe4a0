package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const frameInterval = 80 * time.Millisecond

// Spinner provides visual feedback during slow operations. On a TTY it
// animates in place; otherwise it degrades to plain line output.
type Spinner struct {
	w        io.Writer
	animated bool

	mu      sync.Mutex
	running bool
	msg     string
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Spinner writing to w (stderr when nil). Animation is
// disabled when w is not a terminal, noColor is set, or NO_COLOR is set.
func New(w io.Writer, noColor bool) *Spinner {
	if w == nil {
		w = os.Stderr
	}
	return &Spinner{w: w, animated: !noColor && isTerminal(w)}
}

// Start begins the spinner with the given message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.msg = message
		return
	}

	s.msg = message
	s.running = true

	if !s.animated {
		fmt.Fprintln(s.w, message)
		return
	}

	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.animate()
}

// Update changes the spinner message while running.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.msg == message {
		return
	}
	s.msg = message

	if !s.animated {
		fmt.Fprintln(s.w, message)
	}
}

// Stop clears the spinner line and stops the animation.
// Safe to call multiple times and with defer.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false

	if !s.animated {
		s.mu.Unlock()
		return
	}

	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh
}

func (s *Spinner) animate() {
	defer close(s.doneCh)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		s.mu.Lock()
		msg := s.msg
		s.mu.Unlock()

		fmt.Fprintf(s.w, "\r\033[K%s %s", frames[i%len(frames)], msg)

		select {
		case <-s.stopCh:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

func isTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
