package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
	"github.com/ChizhovVadim/CounterReversi/pkg/engine"
	"github.com/ChizhovVadim/CounterReversi/pkg/eval"
)

type Engine interface {
	Prepare()
	Search(ctx context.Context, b common.Board, side common.Side) engine.SearchInfo
}

// Protocol is a line based text protocol in the spirit of UCI.
// All output is written from the Run goroutine.
type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	game         *common.Game
	out          io.Writer
	thinking     bool
	engineOutput chan engine.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  engine,
		options: options,
		game:    common.NewGame(),
	}
}

// Run reads commands from r until quit, end of input or ctx is done.
// Command errors are logged and do not stop the loop.
func (p *Protocol) Run(ctx context.Context, logger *slog.Logger, r io.Reader, w io.Writer) error {
	p.out = w
	var done = make(chan struct{})
	defer close(done)
	var commands = make(chan string)
	var readErr = make(chan error, 1)

	go func() {
		defer close(commands)
		readErr <- readCommands(r, commands, done)
	}()

	for {
		select {
		case <-ctx.Done():
			p.stopSearch()
			return ctx.Err()
		case si := <-p.engineOutput:
			p.finishSearch(si)
		case commandLine, ok := <-commands:
			if !ok {
				p.waitSearch()
				return <-readErr
			}
			var err = p.handle(commandLine)
			if err != nil {
				logger.Warn("command failed",
					slog.String("command", commandLine),
					slog.Any("error", err))
			}
		}
	}
}

func readCommands(r io.Reader, commands chan<- string, done <-chan struct{}) error {
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			return nil
		}
		if commandLine == "" {
			continue
		}
		select {
		case commands <- commandLine:
		case <-done:
			return nil
		}
	}
	return scanner.Err()
}

func (p *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if p.thinking {
		if commandName == "stop" {
			p.cancel()
			return nil
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "id":
		h = p.idCommand
	case "setoption":
		h = p.setOptionCommand
	case "isready":
		h = p.isReadyCommand
	case "newgame":
		h = p.newGameCommand
	case "position":
		h = p.positionCommand
	case "go":
		h = p.goCommand
	case "legal":
		h = p.legalCommand
	case "eval":
		h = p.evalCommand
	case "d":
		h = p.displayCommand
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(fields)
}

func (p *Protocol) idCommand(fields []string) error {
	fmt.Fprintf(p.out, "id name %s %s\n", p.name, p.version)
	fmt.Fprintf(p.out, "id author %s\n", p.author)
	for _, option := range p.options {
		fmt.Fprintln(p.out, option.String())
	}
	fmt.Fprintln(p.out, "idok")
	return nil
}

func (p *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 || fields[0] != "name" || fields[2] != "value" {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range p.options {
		if strings.EqualFold(option.Name(), name) {
			if err := option.Set(value); err != nil {
				return fmt.Errorf("setoption %v: %w", name, err)
			}
			return nil
		}
	}
	return fmt.Errorf("unhandled option: %v", name)
}

func (p *Protocol) isReadyCommand(fields []string) error {
	p.engine.Prepare()
	fmt.Fprintln(p.out, "readyok")
	return nil
}

func (p *Protocol) newGameCommand(fields []string) error {
	p.game = common.NewGame()
	return nil
}

func (p *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("position: missing arguments")
	}
	var movesIndex = findIndexString(fields, "moves")
	var game *common.Game
	switch fields[0] {
	case "startpos":
		game = common.NewGame()
	case "board":
		if len(fields) < 3 || (movesIndex >= 0 && movesIndex < 3) {
			return errors.New("position board: want <64 squares> <side>")
		}
		var b, err = common.ParseBoard(fields[1])
		if err != nil {
			return fmt.Errorf("position board: %w", err)
		}
		side, err := common.ParseSide(fields[2])
		if err != nil {
			return fmt.Errorf("position board: %w", err)
		}
		game = common.NewGameFromBoard(b, side)
	default:
		return fmt.Errorf("unknown position command: %v", fields[0])
	}
	if movesIndex >= 0 {
		for _, smove := range fields[movesIndex+1:] {
			var move, err = common.ParseMove(smove)
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			if err := game.Play(move); err != nil {
				return fmt.Errorf("position: move %v: %w", smove, err)
			}
		}
	}
	p.game = game
	return nil
}

func (p *Protocol) goCommand(fields []string) error {
	var ctx, cancel = context.WithCancel(context.Background())
	p.cancel = cancel
	p.thinking = true
	p.engineOutput = make(chan engine.SearchInfo, 1)
	var b, side = p.game.Board, p.game.Side
	go func() {
		defer cancel()
		p.engineOutput <- p.engine.Search(ctx, b, side)
	}()
	return nil
}

func (p *Protocol) finishSearch(si engine.SearchInfo) {
	fmt.Fprintln(p.out, searchInfoString(si))
	fmt.Fprintf(p.out, "bestmove %v\n", si.Move)
	p.thinking = false
	p.cancel = nil
	p.engineOutput = nil
}

func (p *Protocol) waitSearch() {
	if p.thinking {
		p.finishSearch(<-p.engineOutput)
	}
}

func (p *Protocol) stopSearch() {
	if p.thinking {
		p.cancel()
		p.finishSearch(<-p.engineOutput)
	}
}

func (p *Protocol) legalCommand(fields []string) error {
	var sb = &strings.Builder{}
	sb.WriteString("legal")
	for _, move := range p.game.LegalMoves() {
		sb.WriteString(" ")
		sb.WriteString(move.String())
	}
	fmt.Fprintln(p.out, sb.String())
	return nil
}

func (p *Protocol) evalCommand(fields []string) error {
	fmt.Fprintln(p.out, eval.EvaluateDetailed(&p.game.Board, p.game.Side))
	return nil
}

func (p *Protocol) displayCommand(fields []string) error {
	fmt.Fprint(p.out, p.game.Board.Pretty())
	var black, white = p.game.Score()
	fmt.Fprintf(p.out, "board %v\n", p.game.Board)
	fmt.Fprintf(p.out, "side %v black %v white %v\n", p.game.Side, black, white)
	return nil
}

func searchInfoString(si engine.SearchInfo) string {
	return fmt.Sprintf("info depth %v score %.2f nodes %v time %v reason %v",
		si.Depth, si.Score, si.Nodes, si.Time.Milliseconds(), si.Reason)
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
