package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// newSessionID names a game on log lines.
var newSessionID = uuid.NewString

// session reads moves from one input and plays them until the game ends,
// the input runs out or the player quits.
type session struct {
	cfg  *config.Config
	in   *bufio.Scanner
	out  io.Writer
	id   string
	game *game.Game
}

func newSession(cfg *config.Config, r io.Reader) *session {
	return &session{
		cfg: cfg,
		in:  bufio.NewScanner(r),
		out: cfg.OutputFile,
	}
}

// run plays games until one is over or the input ends.
func (s *session) run() error {
	if err := s.start(); err != nil {
		return err
	}
	for {
		if err := s.render(); err != nil {
			return err
		}
		if status := s.game.Status(); status.Terminal() {
			return s.finish(status.String())
		}

		done, err := s.turn()
		if err != nil {
			return err
		}
		if done {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return s.finish("abandoned")
		}
	}
}

// start begins a new game under a fresh id.
func (s *session) start() error {
	g, err := newGame(s.cfg)
	if err != nil {
		return err
	}
	s.game = g
	s.id = newSessionID()
	s.logf(config.Summary, "new game, %v to move\n", g.PlayerColour())
	return nil
}

// turn reads one command or move. It returns true when the session should end.
func (s *session) turn() (bool, error) {
	fmt.Fprintf(s.out, "%v move from: ", s.game.PlayerColour())
	line, ok := s.readLine()
	if !ok {
		return true, nil
	}

	switch strings.ToLower(line) {
	case "quit", "exit":
		return true, nil
	case "new":
		s.logf(config.Summary, "abandoned after %d plies\n", s.game.PlyCount())
		return false, s.start()
	case "moves":
		return false, s.listMoves()
	case "history":
		return false, output.WriteHistory(s.out, s.game.Moves(), s.game.FirstMover(), output.DefaultLineLength)
	case "json":
		return false, output.OutputGameJSON(s.out, s.game, s.id)
	}

	from, err := chess.ParsePosition(line)
	if err != nil {
		s.reject(err)
		return false, nil
	}

	fmt.Fprint(s.out, "Move to: ")
	line, ok = s.readLine()
	if !ok {
		return true, nil
	}
	to, err := chess.ParsePosition(line)
	if err != nil {
		s.reject(err)
		return false, nil
	}

	if err := s.game.Move(from, to); err != nil {
		s.reject(err)
		return false, nil
	}
	last, _ := s.game.LastMove()
	s.logf(config.Commentary, "ply %d: %v %v\n", s.game.PlyCount(), last.Piece, last)
	return false, nil
}

func (s *session) render() error {
	if err := output.RenderBoard(s.out, s.game.Board(), s.cfg.Display); err != nil {
		return err
	}
	return output.RenderStatus(s.out, s.game)
}

// listMoves prints the legal moves of the side to move in square order.
func (s *session) listMoves() error {
	moves := s.game.LegalMoves()
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})
	ow := output.NewOutputWriter(s.out, output.DefaultLineLength)
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
	return ow.Err()
}

// finish reports the end of the current game.
func (s *session) finish(reason string) error {
	s.logf(config.Summary, "game over after %d plies: %s\n", s.game.PlyCount(), reason)
	if s.cfg.JSONFormat {
		return output.OutputGameJSON(s.out, s.game, s.id)
	}
	return nil
}

func (s *session) reject(err error) {
	fmt.Fprintln(s.out, err)
	s.logf(config.Commentary, "rejected: %v\n", err)
}

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) logf(level int, format string, args ...interface{}) {
	s.cfg.Logf(level, "[%s] "+format, append([]interface{}{s.id}, args...)...)
}

// newGame starts a game from the configured setup.
func newGame(cfg *config.Config) (*game.Game, error) {
	if cfg.Setup == nil || cfg.Setup.FEN == "" {
		return game.New(), nil
	}
	board, toMove, err := engine.NewBoardFromFEN(cfg.Setup.FEN)
	if err != nil {
		return nil, err
	}
	if cfg.Setup.BlackFirst {
		toMove = chess.Black
	}
	return game.NewFromBoard(board, game.WithFirstMover(toMove))
}
