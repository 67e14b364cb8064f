// Package tui is an interactive human versus engine game.
//
// The model is used from the bubbletea event loop only. The engine runs inside
// a tea.Cmd and reports back with an engineMoveMsg.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
	"github.com/ChizhovVadim/CounterReversi/pkg/engine"
)

type Engine interface {
	Search(ctx context.Context, b common.Board, side common.Side) engine.SearchInfo
}

type engineMoveMsg struct {
	info engine.SearchInfo
}

var (
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	whiteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type Model struct {
	ctx      context.Context
	engine   Engine
	human    common.Side
	game     *common.Game
	row      int
	col      int
	thinking bool
	message  string
	lastInfo engine.SearchInfo
	quitting bool
}

func NewModel(ctx context.Context, eng Engine, human common.Side) Model {
	var game = common.NewGame()
	return Model{
		ctx:      ctx,
		engine:   eng,
		human:    human,
		game:     game,
		row:      2,
		col:      3,
		thinking: game.Side != human,
	}
}

func (m Model) Game() *common.Game {
	return m.game
}

func (m Model) Init() tea.Cmd {
	if m.thinking {
		return m.search()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case engineMoveMsg:
		m.thinking = false
		m.lastInfo = msg.info
		if err := m.game.Play(msg.info.Move); err != nil {
			m.message = fmt.Sprintf("engine error: %v", err)
			return m, nil
		}
		m.message = fmt.Sprintf("engine plays %v (%v)", msg.info.Move, msg.info.Reason)
		return m, m.next()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.row = (m.row + common.BoardSize - 1) % common.BoardSize
	case "down", "j":
		m.row = (m.row + 1) % common.BoardSize
	case "left", "h":
		m.col = (m.col + common.BoardSize - 1) % common.BoardSize
	case "right", "l":
		m.col = (m.col + 1) % common.BoardSize
	case "n":
		if m.thinking {
			return m, nil
		}
		m.game = common.NewGame()
		m.message = "new game"
		m.lastInfo = engine.SearchInfo{}
		return m, m.next()
	case "enter", " ":
		return m.playHuman(common.MakeMove(m.row, m.col))
	}
	return m, nil
}

func (m Model) playHuman(move common.Move) (tea.Model, tea.Cmd) {
	if m.thinking || m.game.IsOver() || m.game.Side != m.human {
		return m, nil
	}
	if err := m.game.Play(move); err != nil {
		m.message = fmt.Sprintf("%v is not a legal move", move)
		return m, nil
	}
	m.message = fmt.Sprintf("you play %v", move)
	return m, m.next()
}

// next passes for a side without moves and starts the engine when it is on move.
func (m *Model) next() tea.Cmd {
	for m.game.MustPass() {
		m.message = fmt.Sprintf("%v passes", m.game.Side)
		if err := m.game.Play(common.MoveEmpty); err != nil {
			panic(err)
		}
	}
	if m.game.IsOver() || m.game.Side == m.human {
		return nil
	}
	m.thinking = true
	return m.search()
}

func (m *Model) search() tea.Cmd {
	var ctx, eng = m.ctx, m.engine
	var b, side = m.game.Board, m.game.Side
	return func() tea.Msg {
		return engineMoveMsg{info: eng.Search(ctx, b, side)}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sb = &strings.Builder{}
	sb.WriteString(titleStyle.Render("Reversi"))
	sb.WriteString("\n\n")
	sb.WriteString(boxStyle.Render(m.boardView()))
	sb.WriteString("\n")
	sb.WriteString(m.statusView())
	sb.WriteString("\n")
	if m.message != "" {
		sb.WriteString(m.message)
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("arrows/hjkl move  enter play  n new game  q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) boardView() string {
	var hints []common.Move
	if m.game.Side == m.human && !m.thinking {
		hints = m.game.LegalMoves()
	}
	var sb = &strings.Builder{}
	sb.WriteString(gridStyle.Render("  a b c d e f g h"))
	for row := 0; row < common.BoardSize; row++ {
		sb.WriteString("\n")
		sb.WriteString(gridStyle.Render(fmt.Sprint(row + 1)))
		for col := 0; col < common.BoardSize; col++ {
			sb.WriteString(" ")
			var move = common.MakeMove(row, col)
			var cell string
			switch m.game.Board.At(move) {
			case common.Black:
				cell = blackStyle.Render("X")
			case common.White:
				cell = whiteStyle.Render("O")
			default:
				if common.ContainsMove(hints, move) {
					cell = hintStyle.Render("*")
				} else {
					cell = gridStyle.Render(".")
				}
			}
			if row == m.row && col == m.col {
				cell = cursorStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

func (m Model) statusView() string {
	var black, white = m.game.Score()
	var status = fmt.Sprintf("X %d - %d O", black, white)
	switch {
	case m.game.IsOver():
		switch m.game.Winner() {
		case m.human:
			status += "  you win"
		case common.Empty:
			status += "  draw"
		default:
			status += "  engine wins"
		}
	case m.thinking:
		status += "  engine is thinking..."
	case m.game.Side == m.human:
		status += fmt.Sprintf("  your move (%v)", m.human)
	}
	if m.lastInfo.Reason != "" {
		status += fmt.Sprintf("  [depth %d score %.1f nodes %d]",
			m.lastInfo.Depth, m.lastInfo.Score, m.lastInfo.Nodes)
	}
	return status
}

// Run plays one interactive session on the terminal.
func Run(ctx context.Context, eng Engine, human common.Side, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	var p = tea.NewProgram(NewModel(ctx, eng, human), opts...)
	var _, err = p.Run()
	return err
}
