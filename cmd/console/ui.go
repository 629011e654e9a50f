package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/session"
)

const (
	GameName        = "ADVENTURE ENGINE"
	PlaceHolderText = "What do you do?"
)

// turn is one exchange shown in the transcript.
type turn struct {
	input  string // empty for the opening message
	result engine.Result
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	session      *SessionResponse
	turns        []turn
	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool
	state        session.GameState
	directions   []string

	// Quit confirmation state (local to the console; the engine has its
	// own quit flow reachable by typing "quit")
	showQuitModal bool

	// copied flags that the last response was copied to the clipboard
	copied bool
}

type commandResultMsg struct {
	input  string
	result *engine.Result
	err    error
}

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")). // gold
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, sess *SessionResponse) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		session:      sess,
		state:        sess.State,
		turns:        []turn{{result: engine.Result{Message: sess.Message, State: sess.State}}},
		textarea:     ta,
		gameViewport: gameVp,
		metaViewport: metaVp,
	}
}

// writeGameContent rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeGameContent() {
	gameWidth := m.gameViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render(GameName) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(gameWidth-6, 1))) + "\n\n")

	for _, t := range m.turns {
		if t.input != "" {
			content.WriteString(userStyle.Render("> "+t.input) + "\n")
		}
		content.WriteString(formatResult(t.result, gameWidth) + "\n\n")
	}

	if m.loading {
		content.WriteString(promptStyle.Render("...") + "\n")
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	m.gameViewport.SetContent(content.String())
	m.gameViewport.GotoBottom()
}

// formatResult wraps and styles one engine result, emphasizing the
// highlight substring when the engine supplied one.
func formatResult(result engine.Result, width int) string {
	wrapped := wordwrap.String(result.Message, max(width-2, 10))
	styled := narratorStyle.Render(wrapped)
	if result.Highlight != "" {
		// Restyle the highlighted word inside the wrapped text.
		styled = strings.ReplaceAll(styled, result.Highlight, highlightStyle.Render(result.Highlight))
	}
	return styled
}

func (m *ConsoleUI) writeMetadata() {
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	content.WriteString("Session ID:\n")
	id := m.session.ID
	if len(id) > 8 {
		id = id[:8] + "..."
	}
	content.WriteString(id + "\n\n")

	content.WriteString("State:\n")
	content.WriteString(string(m.state) + "\n\n")

	content.WriteString("Exits:\n")
	if len(m.directions) == 0 {
		content.WriteString("None\n")
	} else {
		for _, d := range m.directions {
			content.WriteString("• " + d + "\n")
		}
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /copy: Copy reply\n")
	if m.copied {
		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Copied to clipboard."))
	}

	m.metaViewport.SetContent(content.String())
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.gameViewport, vpCmd = m.gameViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		gameWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - gameWidth - 6

		m.gameViewport.Width = gameWidth - 2
		m.gameViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(gameWidth - 4)

		m.ready = true
		m.writeGameContent()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			if strings.HasPrefix(input, "/") {
				return m.handleSlashCommand(input)
			}

			m.textarea.Reset()
			m.loading = true
			m.err = nil
			m.copied = false
			m.writeGameContent()
			return m, m.sendCommand(input)
		}

	case commandResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.writeGameContent()
			return m, nil
		}

		prevState := m.state
		m.state = msg.result.State
		m.directions = msg.result.Directions
		m.turns = append(m.turns, turn{input: msg.input, result: *msg.result})
		m.writeGameContent()
		m.writeMetadata()

		// A confirmed quit ends the session server-side; leave the UI.
		if prevState == session.StateWaitingForQuitConfirmation &&
			m.state == session.StateWaitingForStartAnswer {
			return m, tea.Quit
		}
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m ConsoleUI) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))
	m.textarea.Reset()

	switch cmd {
	case "/copy":
		if len(m.turns) > 0 {
			last := m.turns[len(m.turns)-1].result.Message
			if err := clipboard.WriteAll(last); err != nil {
				m.err = fmt.Errorf("clipboard: %w", err)
				m.writeGameContent()
			} else {
				m.copied = true
				m.writeMetadata()
			}
		}
	case "/quit":
		m.showQuitModal = true
	}
	return m, nil
}

func (m ConsoleUI) sendCommand(input string) tea.Cmd {
	return func() tea.Msg {
		result, err := sendCommand(m.client, m.config.APIBaseURL, m.session.ID, input)
		return commandResultMsg{input: input, result: result, err: err}
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			m.endSession()
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				m.endSession()
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}
	return m, nil
}

// endSession tells the API to discard the session. Best effort: the
// console is exiting either way.
func (m ConsoleUI) endSession() {
	_ = deleteSession(m.client, m.config.APIBaseURL, m.session.ID)
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to abandon your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	gamePanel := gamePanelStyle.Width(gameWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.gameViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(gameWidth-4, 1))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)
}
