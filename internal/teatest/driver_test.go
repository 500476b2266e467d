package teatest

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// echoModel prints every submitted line and quits on "bye".
type echoModel struct {
	line  string
	width int
}

func (m echoModel) Init() tea.Cmd { return tea.Println("ready") }

func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			line := m.line
			m.line = ""
			if line == "bye" {
				return m, tea.Quit
			}
			return m, tea.Batch(tea.Println("> "+line), nil)
		case tea.KeyRunes:
			m.line += string(msg.Runes)
		}
	}
	return m, nil
}

func (m echoModel) View() string { return m.line }

func TestDriver_RecordsPrintedLines(t *testing.T) {
	d := New(t, echoModel{}, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, []string{"ready"}, d.Printed)

	d.Type("hel")
	assert.Equal(t, "hel", d.View())
	d.Type("lo")
	d.PressEnter()

	assert.Equal(t, "> hello", d.LastPrinted())
	assert.Equal(t, 80, d.Model.(echoModel).width)
	assert.Equal(t, "ready\n> hello", d.Output())

	d.ResetOutput()
	assert.Empty(t, d.Output())
	assert.Empty(t, d.LastPrinted())
}

func TestDriver_SubmitAndQuit(t *testing.T) {
	d := New(t, echoModel{})
	d.Submit("one")
	d.Submit("bye")
	assert.True(t, d.Quitting)

	d.Submit("ignored")
	assert.False(t, strings.Contains(d.Output(), "ignored"))
}
