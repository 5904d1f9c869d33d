package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"xiangqi/internal/console"
	"xiangqi/internal/xiangqi"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const maxLogLines = 200

type Model struct {
	game *xiangqi.Game

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "x1,y1 x2,y2"
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Width = 30

	return Model{
		game:  xiangqi.NewGame(),
		m:     modeNormal,
		input: ti,
		logLines: []string{
			"ready (press i to enter a move, n for a new game)",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				if m.game.IsOver() {
					m.appendLog("game is over, press n for a new game")
					return m, nil
				}
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			case "n":
				m.game = xiangqi.NewGame()
				m.appendLog("new game, red to move")
				return m, nil
			}
			return m, nil

		case modeInput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line != "" {
					m.submit(line)
				}
				if m.game.IsOver() {
					m.m = modeNormal
					m.input.Blur()
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// submit 解析并提交一步棋，结果写入日志
func (m *Model) submit(line string) {
	m.appendLog("> " + line)

	mv, err := console.ParseMove(line)
	if err != nil {
		m.appendLog(fmt.Sprintf("invalid input: %v", err))
		return
	}

	side := m.game.Turn()
	if err := m.game.SubmitMove(mv); err != nil {
		m.appendLog(fmt.Sprintf("illegal: %v", err))
		return
	}
	m.appendLog(fmt.Sprintf("%s %s", side, mv))

	if winner, over := m.game.Winner(); over {
		m.appendLog(fmt.Sprintf("game over, %s wins", winner))
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) status() string {
	if winner, over := m.game.Winner(); over {
		return fmt.Sprintf("GAME OVER  winner:%s", winner.DisplayName())
	}
	return fmt.Sprintf("turn:%s  moves:%d", m.game.Turn().DisplayName(), m.game.Moves())
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("xiangqi  [%s]  mode:%s", m.status(), modeStr))

	boardBox := boxStyle.Render(RenderBoard(m.game.Board()))

	logHeight := max(5, lipgloss.Height(boardBox)-2)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(30, m.width-lipgloss.Width(boardBox)-4)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "i: move  n: new game  q: quit"
	}
	inputBox := boxStyle.Render(inputLine)

	body := lipgloss.JoinHorizontal(lipgloss.Top, boardBox, logBox)
	return header + "\n" + body + "\n" + inputBox + "\n"
}
