package view

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// runCmds drains a command and everything it spawns, feeding resulting
// messages back into the model the way the bubbletea runtime does. Cursor
// blink ticks are dropped so the loop terminates.
func runCmds(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()

	queue := []tea.Cmd{cmd}

	for steps := 0; len(queue) > 0; steps++ {
		if steps > 1000 {
			t.Fatal("command loop did not settle")
		}

		next := queue[0]
		queue = queue[1:]

		if next == nil {
			continue
		}

		msg := next()
		if msg == nil {
			continue
		}

		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}

		if _, ok := msg.(cursor.BlinkMsg); ok {
			continue
		}

		var followUp tea.Cmd
		m, followUp = m.Update(msg)
		queue = append(queue, followUp)
	}

	return m
}

// press sends key messages one at a time, settling commands between them.
func press(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()

	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m = runCmds(t, m, cmd)
	}

	return m
}

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}
