package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/intelligence"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // Normal command input.
	modeWizard                   // huh form is active.
	modeConfirm                  // Awaiting y/n for a destructive command.
	modeCoach                    // Chatting with the coach.
)

// pendingConfirmation is a destructive command waiting for y/n.
type pendingConfirmation struct {
	description string
	args        []string
}

// asyncOutputMsg carries the output of a command that ran off the UI loop.
type asyncOutputMsg struct {
	output string
}

// coachReplyMsg carries the outcome of one coach send.
type coachReplyMsg struct {
	reply domain.ChatMessage
	err   error
}

// shellModel is the bubbletea Model for the interactive shell. It drives a
// single Session for its whole lifetime.
type shellModel struct {
	input   textinput.Model
	form    *huh.Form
	spinner spinner.Model
	width   int

	app *App
	// captureApp shares app's session but never prompts, so cobra commands
	// run from the shell cannot open their own forms or spinners.
	captureApp *App

	mode           shellMode
	wizardDone     func(m *shellModel) tea.Cmd
	pendingConfirm *pendingConfirmation

	// busy labels the request in flight; empty when idle.
	busy string

	history  shellHistory
	quitting bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Tab accepts a suggestion; Up/Down are kept for history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	capture := *app
	capture.IsInteractive = func() bool { return false }

	return shellModel{
		input:      ti,
		spinner:    sp,
		app:        app,
		captureApp: &capture,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case asyncOutputMsg:
		m.busy = ""
		return m, tea.Println(msg.output)

	case coachReplyMsg:
		m.busy = ""
		if msg.err != nil {
			return m, tea.Println(shellError(msg.err))
		}
		return m, tea.Println(formatter.FormatChatMessage(msg.reply))

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeWizard:
			return m.updateWizard(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeCoach:
			if msg.Type == tea.KeyEsc {
				m.mode = modePrompt
				return m, nil
			}
			return m.updateLineMode(msg, (*shellModel).handleCoachInput)
		default:
			return m.updatePrompt(msg)
		}
	}

	// huh needs its non-key messages (init, focus transitions) too.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}

	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}

	view := m.promptPrefix() + m.input.View()
	if m.busy != "" {
		view = m.spinner.View() + " " + formatter.Dim(m.busy) + "\n" + view
	}
	return view
}

func (m *shellModel) promptPrefix() string {
	switch m.mode {
	case modeConfirm:
		return formatter.StyleYellow.Render("confirm (y/n)") + " " + formatter.Dim("❯") + " "
	case modeCoach:
		return formatter.StylePurple.Render("coach") + formatter.Dim("> ")
	default:
		return formatter.StylePurple.Render("zenith") + " " + formatter.Dim("❯") + " "
	}
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.history.add(input)
		output, cmd := m.executeCommand(input)
		return m, printThen(output, cmd)

	case tea.KeyUp:
		if line, ok := m.history.prev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		m.input.SetValue(m.history.next())
		m.input.CursorEnd()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

func printThen(output string, cmd tea.Cmd) tea.Cmd {
	var cmds []tea.Cmd
	if output != "" {
		cmds = append(cmds, tea.Println(output))
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard switches to wizard mode with the given form and completion callback.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			return m, tea.Batch(cmd, done(&m))
		}
	case huh.StateAborted:
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	return m, cmd
}

// ── confirm mode ─────────────────────────────────────────────────────────────

func (m shellModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	pending := m.pendingConfirm
	m.pendingConfirm = nil
	m.mode = modePrompt

	switch strings.ToLower(input) {
	case "y", "yes":
		return m, tea.Println(m.execCobraCapture(pending.args))
	default:
		return m, tea.Println(formatter.Dim("Cancelled."))
	}
}

// ── line-based modes ─────────────────────────────────────────────────────────

type lineHandler func(m *shellModel, input string) (string, tea.Cmd)

func (m shellModel) updateLineMode(msg tea.KeyMsg, handler lineHandler) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	input := m.input.Value()
	m.input.Reset()
	output, cmd := handler(&m, input)
	return m, printThen(output, cmd)
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) <= 1 && !trailingSpace {
		m.input.SetSuggestions(filterSuggestions(allCommandNames(), parts[0]))
		return
	}

	if len(parts) <= 2 && (!trailingSpace || len(parts) == 1) {
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}
		if subs, ok := subcommandNames()[strings.ToLower(parts[0])]; ok {
			withParent := make([]string, 0, len(subs))
			for _, s := range filterSuggestions(subs, prefix) {
				withParent = append(withParent, parts[0]+" "+s)
			}
			m.input.SetSuggestions(withParent)
			return
		}
	}

	m.input.SetSuggestions(nil)
}

// allCommandNames returns all top-level shell command names.
func allCommandNames() []string {
	return []string{
		"goals", "goal", "prefs",
		"generate", "routine", "insights",
		"coach", "status",
		"clear", "help", "exit", "quit",
	}
}

// subcommandNames returns subcommand lists by parent command.
func subcommandNames() map[string][]string {
	return map[string][]string{
		"goal":    {"add", "list", "remove"},
		"prefs":   {"show", "set", "edit"},
		"routine": {"generate", "show"},
		"coach":   {"say", "transcript"},
	}
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	sub := ""
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
	}

	switch cmd {
	case "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "clear":
		return "\033[H\033[2J", nil
	case "help":
		return formatter.FormatShellHelp(), nil
	case "shell":
		return formatter.StyleYellow.Render("Already in shell mode."), nil
	}

	if m.busy != "" {
		return formatter.StyleYellow.Render("Still busy: "+m.busy) + " " + formatter.Dim("Wait for it to finish."), nil
	}

	switch {
	case cmd == "generate" || (cmd == "routine" && (sub == "generate" || sub == "gen")):
		return "", m.runAsync("Architecting your day...", []string{"routine", "generate"})
	case cmd == "insights":
		return "", m.runAsync("Analyzing your goals...", []string{"insights"})
	case cmd == "coach" && len(args) == 0:
		return m.enterCoach(), nil
	case cmd == "coach" && sub == "say":
		return m.sendToCoach(strings.Join(args[1:], " "))
	case (cmd == "goal" || cmd == "goals") && sub == "add" && len(args) == 1:
		return "", m.startGoalWizard()
	case (cmd == "goal" || cmd == "goals") && (sub == "remove" || sub == "rm"):
		return m.confirmDestructive(parts), nil
	case (cmd == "prefs" || cmd == "preferences") && sub == "edit":
		return m.startPrefsWizard()
	default:
		return m.execCobraCapture(parts), nil
	}
}

// execCobraCapture runs a command through the Cobra tree and captures output.
func (m *shellModel) execCobraCapture(args []string) string {
	return captureCobra(m.captureApp, args)
}

func captureCobra(app *App, args []string) string {
	var buf strings.Builder
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.DisableSuggestions = true
	if err := root.Execute(); err != nil {
		buf.WriteString(shellError(err))
		if strings.Contains(err.Error(), "unknown command") && len(args) > 0 {
			if hint := suggestAlternatives(root, args[0]); hint != "" {
				buf.WriteString("\n" + hint)
			}
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

// runAsync runs a cobra command off the UI loop and shows a spinner until
// its output arrives.
func (m *shellModel) runAsync(label string, args []string) tea.Cmd {
	m.busy = label
	app := m.captureApp
	return tea.Batch(
		func() tea.Msg { return asyncOutputMsg{output: captureCobra(app, args)} },
		m.spinner.Tick,
	)
}

func (m *shellModel) confirmDestructive(parts []string) string {
	for _, a := range parts[2:] {
		if a == "--yes" || a == "-y" {
			return m.execCobraCapture(parts)
		}
	}
	if len(parts) < 3 {
		return m.execCobraCapture(parts)
	}

	desc := "remove goal " + parts[2]
	m.mode = modeConfirm
	m.pendingConfirm = &pendingConfirmation{description: desc, args: parts}

	return fmt.Sprintf("%s %s\n%s",
		formatter.StyleYellow.Render("Confirm:"),
		desc+"?",
		formatter.Dim("Enter y to confirm, anything else to cancel."))
}

func (m *shellModel) startGoalWizard() tea.Cmd {
	in := &domain.GoalInput{}
	return m.startWizard(goalForm(in), func(m *shellModel) tea.Cmd {
		g, err := m.app.Session.AddGoal(context.Background(), *in)
		if err != nil {
			return tea.Println(shellError(err))
		}
		return tea.Println(formatter.FormatGoalAdded(g))
	})
}

func (m *shellModel) startPrefsWizard() (string, tea.Cmd) {
	current, err := m.app.Session.Preferences(context.Background())
	if err != nil {
		return shellError(err), nil
	}
	fields := newPrefsFields(current)
	return "", m.startWizard(prefsForm(fields), func(m *shellModel) tea.Cmd {
		p, err := m.app.Session.SetPreferences(context.Background(), fields.input())
		if err != nil {
			return tea.Println(shellError(err))
		}
		return tea.Println(formatter.FormatPreferences(p))
	})
}

// ── coach chat ───────────────────────────────────────────────────────────────

func (m *shellModel) enterCoach() string {
	m.mode = modeCoach
	out := formatter.FormatCoachWelcome(intelligence.CoachWelcome)
	if transcript := m.app.Session.Transcript(); len(transcript) > 0 {
		out += "\n" + formatter.FormatTranscript(transcript)
	}
	return out
}

func (m *shellModel) handleCoachInput(input string) (string, tea.Cmd) {
	text := strings.TrimSpace(input)
	switch strings.ToLower(text) {
	case "/quit", "/exit", "/q":
		m.mode = modePrompt
		return formatter.Dim("Left the coach."), nil
	case "/transcript":
		return formatter.FormatTranscript(m.app.Session.Transcript()), nil
	case "":
		return "", nil
	}

	if m.busy != "" {
		m.input.SetValue(input)
		m.input.CursorEnd()
		return formatter.Dim("Zenith is still replying. Send again once the answer arrives."), nil
	}
	return m.sendToCoach(text)
}

// sendToCoach echoes the user's line and sends it without blocking the UI.
func (m *shellModel) sendToCoach(text string) (string, tea.Cmd) {
	if strings.TrimSpace(text) == "" {
		return shellError(domain.ErrEmptyMessage), nil
	}
	m.busy = "Zenith is thinking..."
	app := m.app
	send := func() tea.Msg {
		reply, err := coachReply(context.Background(), app, text)
		return coachReplyMsg{reply: reply, err: err}
	}
	echo := formatter.FormatChatMessage(domain.ChatMessage{Role: domain.RoleUser, Text: text})
	return echo, tea.Batch(send, m.spinner.Tick)
}

func shellError(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}
