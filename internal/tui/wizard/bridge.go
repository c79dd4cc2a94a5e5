package wizard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnarQorp/anarqq-installer/internal/installer"
)

// RunFunc executes one installation run, reporting through the two sinks.
// The CLI supplies the real wiring; tests supply fakes.
type RunFunc func(ctx context.Context, progress installer.ProgressSink, log func(line string)) installer.Outcome

// Bridge runs the installation in a background goroutine and produces
// tea.Msg values for the TUI via a channel. The orchestrator stays
// synchronous; only its callbacks cross the channel.
type Bridge struct {
	run    RunFunc
	msgs   chan tea.Msg
	ctx    context.Context
	cancel context.CancelFunc
}

// NewBridge creates a Bridge for one run.
func NewBridge(run RunFunc) *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bridge{
		run:    run,
		msgs:   make(chan tea.Msg, 64),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Cancel signals the running installation to stop.
func (b *Bridge) Cancel() {
	b.cancel()
}

// send delivers a message on the channel, respecting context cancellation
// to prevent deadlocks if the TUI has been shut down.
func (b *Bridge) send(msg tea.Msg) bool {
	select {
	case b.msgs <- msg:
		return true
	case <-b.ctx.Done():
		return false
	}
}

// Start launches the run in a background goroutine and returns a tea.Cmd
// that delivers the first message.
func (b *Bridge) Start() tea.Cmd {
	go func() {
		defer close(b.msgs)

		outcome := b.run(b.ctx,
			func(percent int, message string) {
				b.send(ProgressMsg{Percent: percent, Message: message})
			},
			func(line string) {
				b.send(LogMsg{Line: line})
			},
		)

		// Deliver the outcome even if the context was cancelled mid-send,
		// so the summary screen always has a verdict to show. Under
		// backpressure (buffer full of undrained log lines) the send waits
		// for the TUI to catch up; only a cancelled run with nobody left
		// draining gives up.
		select {
		case b.msgs <- DoneMsg{Outcome: outcome}:
		default:
			select {
			case b.msgs <- DoneMsg{Outcome: outcome}:
			case <-b.ctx.Done():
			}
		}
	}()

	return b.NextMsg()
}

// NextMsg returns a tea.Cmd that waits for the next message from the channel.
func (b *Bridge) NextMsg() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.msgs
		if !ok {
			return nil
		}
		return msg
	}
}
