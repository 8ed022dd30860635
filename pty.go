package term

import (
	"io"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"sync"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// maxAccumulation bounds how much PTY output the reader loop will buffer
// before forcing a flush, so a renderer waiting behind a lease never waits
// on more than one megabyte of backlog.
const maxAccumulation = 1 << 20

// PTYSession spawns a shell inside a pseudo-terminal and drives a Terminal
// from its output. A dedicated goroutine reads the PTY and feeds bytes to
// the terminal; Write queues input to be drained by that same goroutine so
// keyboard input never blocks on a stalled child process.
type PTYSession struct {
	// ID is a stable, opaque identifier for this session, useful for
	// correlating log lines across a reader goroutine's lifetime.
	ID uuid.UUID

	term *Terminal

	cmd *exec.Cmd
	pty *os.File

	input chan []byte
	wake  chan struct{}
	done  chan struct{}

	mu      sync.Mutex
	closed  bool
	exitErr error
}

// PTYOptions configures a new PTYSession. A zero value spawns the caller's
// login shell with an inherited environment.
type PTYOptions struct {
	// Shell is the executable to run. Empty means findShell picks one.
	Shell string
	// Args are passed to Shell. Empty means a plain interactive invocation.
	Args []string
	// Dir sets the child's working directory. Empty means the caller's home.
	Dir string
	// Extra holds additional KEY=VALUE environment entries appended after
	// the constructed base environment.
	Extra []string
	Rows  int
	Cols  int
}

// NewPTYSession spawns a shell under a PTY sized rows x cols and starts
// feeding its output into t. The returned session owns the PTY file
// descriptor and child process until Close is called.
func NewPTYSession(t *Terminal, opts PTYOptions) (*PTYSession, error) {
	rows, cols := opts.Rows, opts.Cols
	if rows <= 0 {
		rows = DEFAULT_ROWS
	}
	if cols <= 0 {
		cols = DEFAULT_COLS
	}

	shell := opts.Shell
	if shell == "" {
		shell = findShell()
	}

	dir := opts.Dir
	if dir == "" {
		if u, err := user.Current(); err == nil {
			dir = u.HomeDir
		}
	}

	cmd := exec.Command(shell, opts.Args...)
	cmd.Dir = dir
	cmd.Env = append(buildEnv(shell), opts.Extra...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}

	s := &PTYSession{
		ID:    uuid.New(),
		term:  t,
		cmd:   cmd,
		pty:   ptmx,
		input: make(chan []byte, 64),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}

	go s.waitLoop()
	go s.readLoop()

	return s, nil
}

// Wake returns a channel that receives a value each time new output has
// been applied to the terminal, so a render loop can select on it instead
// of polling HasDirty.
func (s *PTYSession) Wake() <-chan struct{} {
	return s.wake
}

// Done returns a channel closed once the PTY has reached EOF and the
// session has finished draining.
func (s *PTYSession) Done() <-chan struct{} {
	return s.done
}

// ExitError returns the child process's wait error, if any, once Done has
// been closed. Safe to call before then; returns nil until the child exits.
func (s *PTYSession) ExitError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitErr
}

// Write queues data to be written to the PTY. It never blocks on the child
// process: bytes are handed to the reader goroutine's input channel and
// drained there between reads.
func (s *PTYSession) Write(data []byte) (int, error) {
	cp := make([]byte, len(data))
	copy(cp, data)

	select {
	case s.input <- cp:
		return len(data), nil
	case <-s.done:
		return 0, io.ErrClosedPipe
	}
}

// Resize updates both the terminal's grid dimensions and the PTY's window
// size. The PTY ioctl runs after Terminal.Resize has released its own lock,
// so a slow resize syscall never holds up unrelated terminal state access.
func (s *PTYSession) Resize(rows, cols int) error {
	s.term.Resize(rows, cols)
	return pty.Setsize(s.pty, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Close kills the child process and closes the PTY, then waits for the
// reader goroutine to drain and exit.
func (s *PTYSession) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	err := s.pty.Close()
	<-s.done
	return err
}

func (s *PTYSession) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	s.exitErr = err
	s.mu.Unlock()
}

// readLoop is the PTY pipeline: lease the fair mutex, block on a PTY read,
// probe whether the data lock is contended, and decide whether to flush the
// accumulated bytes into the terminal now or keep accumulating for the next
// pass. It does not hold a lock across Terminal.Write itself — Write drives
// the ansicode decoder, which calls back into ~60 independent handler
// methods that each take Terminal.mu for their own operation, and FairMutex
// is not reentrant, so wrapping Write in an outer lock here would deadlock
// against them. The lease/TryLockUnfair dance instead governs flush
// cadence: while a renderer is mid-critical-section the reader keeps
// accumulating (up to maxAccumulation) rather than piling up Write calls
// that would just queue behind the same renderer anyway.
func (s *PTYSession) readLoop() {
	buf := make([]byte, 4096)
	var accumulated []byte

	flush := func() {
		if len(accumulated) == 0 {
			return
		}
		if _, err := s.term.Write(accumulated); err != nil {
			log.Error().Err(err).Str("session", s.ID.String()).Msg("terminal write from pty reader failed")
		}
		accumulated = accumulated[:0]
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}

	for {
		lease := s.term.mu.Lease()
		n, readErr := s.pty.Read(buf)
		if n > 0 {
			accumulated = append(accumulated, buf[:n]...)
		}

		uncontended := s.term.mu.TryLockUnfair()
		if uncontended {
			s.term.mu.Unlock()
		}
		shouldFlush := uncontended || len(accumulated) >= maxAccumulation || readErr != nil
		lease.Release()

		if shouldFlush {
			flush()
		}

		s.drainInput()

		if readErr != nil {
			close(s.done)
			return
		}
	}
}

// drainInput writes any input queued by Write to the PTY without blocking,
// so a burst of keystrokes doesn't stall the reader loop.
func (s *PTYSession) drainInput() {
	for {
		select {
		case data := <-s.input:
			if _, err := s.pty.Write(data); err != nil {
				log.Error().Err(err).Str("session", s.ID.String()).Msg("pty write failed")
				return
			}
		default:
			return
		}
	}
}

// findShell resolves a login shell the same way RavenTerminal does: prefer
// /etc/passwd's entry for the current user, falling back to a short list of
// common shells.
func findShell() string {
	if u, err := user.Current(); err == nil {
		if shell := passwdShell(u.Username); shell != "" {
			if _, err := os.Stat(shell); err == nil {
				return shell
			}
		}
	}

	for _, candidate := range []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/usr/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "/bin/sh"
}

// passwdShell reads the shell field for username out of /etc/passwd.
func passwdShell(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}

// buildEnv constructs the child process environment: the caller's own
// environment plus the terminal-capability variables a shell and the
// programs it launches expect to see.
func buildEnv(shell string) []string {
	env := append([]string{}, os.Environ()...)
	env = append(env,
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		"SHELL="+shell,
	)
	return env
}
