package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/justinabrahms/hotseat/internal/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	level := flag.String("log-level", "info", "Log level (trace, debug, info, warn)")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	engine := chess.NewGame(chess.LogNotifier{Logger: log.Logger})
	play(engine, os.Stdin, os.Stdout)
}

const usage = `Enter a square (e2) to select a piece, then its destination (e4).
Commands: undo, cancel, board, help, quit`

// play runs the input loop until quit or end of input.
func play(engine *chess.Engine, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, usage)
	fmt.Fprint(out, engine.Board())
	prompt(engine, out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch line {
		case "":
		case "quit", "exit":
			return
		case "help":
			fmt.Fprintln(out, usage)
		case "board":
			fmt.Fprint(out, engine.Board())
		case "cancel":
			engine.Cancel()
		case "undo":
			if err := engine.UndoLastTurn(); err != nil {
				fmt.Fprintln(out, err)
			} else {
				fmt.Fprint(out, engine.Board())
			}
		default:
			sq, err := chess.ParseCoordinate(line)
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			result, err := engine.Select(sq)
			if err != nil {
				if errors.Is(err, chess.ErrGameOver) {
					fmt.Fprintln(out, "game over, undo or quit")
				} else {
					fmt.Fprintln(out, err)
				}
				break
			}
			if result != nil {
				fmt.Fprint(out, engine.Board())
				report(result, out)
			}
		}
		prompt(engine, out)
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Failed to read input")
	}
}

func report(result *chess.MoveResult, out io.Writer) {
	switch {
	case result.Checkmate:
		fmt.Fprintf(out, "%s %s\n", chess.MessageCheckmate, result.Status)
	case result.Check:
		fmt.Fprintln(out, chess.MessageCheck)
	}
}

func prompt(engine *chess.Engine, out io.Writer) {
	if engine.GameOver() {
		fmt.Fprint(out, "game over> ")
		return
	}
	if sq, ok := engine.Selected(); ok {
		fmt.Fprintf(out, "%s %s to> ", engine.Turn(), sq)
		return
	}
	fmt.Fprintf(out, "%s> ", engine.Turn())
}
