package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/puzzlith/input"
	"github.com/katalvlaran/puzzlith/solve"
)

// defaultRoot is the input directory used when neither the -input flag
// nor PUZZLITH_INPUT names one.
const defaultRoot = "inputs"

// errUsage marks flag-level failures so main can exit 2 instead of 1.
var errUsage = errors.New("puzzlith: bad usage")

// main is the entrypoint for the puzzlith runner.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// run holds the whole CLI body so tests can drive it with their own
// writer and argument list. Answers go to out; logs stay on stderr.
func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("puzzlith", flag.ContinueOnError)
	day := fs.Int("day", 0, "day to solve (0 = every registered day)")
	part := fs.Int("part", 0, "part to solve (0 = every part of the day)")
	root := fs.String("input", "", `input root directory (default $PUZZLITH_INPUT or "inputs")`)
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found")
	}

	dir := *root
	if dir == "" {
		dir = os.Getenv("PUZZLITH_INPUT")
	}
	if dir == "" {
		dir = defaultRoot
	}
	log.Debug().Str("root", dir).Msg("input root resolved")

	days := solve.Days()
	explicit := *day != 0
	if explicit {
		if solve.Parts(*day) == 0 {
			return fmt.Errorf("day %d: no solver registered", *day)
		}
		days = []int{*day}
	}

	for _, d := range days {
		text, err := input.ReadDay(dir, d)
		if err != nil {
			if explicit {
				return err
			}
			log.Warn().Int("day", d).Err(err).Msg("skipping day without input")
			continue
		}
		log.Debug().Int("day", d).Str("path", input.DayPath(dir, d)).Msg("input loaded")

		if err := solveDay(out, d, *part, text, explicit); err != nil {
			return err
		}
	}

	return nil
}

// solveDay prints the answers for one day. part 0 means every part;
// when sweeping all days, a part the day does not have is skipped
// rather than fatal.
func solveDay(out io.Writer, day, part int, text string, explicit bool) error {
	parts := []int{part}
	if part == 0 {
		parts = parts[:0]
		for p := 1; p <= solve.Parts(day); p++ {
			parts = append(parts, p)
		}
	} else if !explicit && part > solve.Parts(day) {
		log.Debug().Int("day", day).Int("part", part).Msg("day has no such part, skipping")
		return nil
	}

	for _, p := range parts {
		answer, err := solve.Run(day, p, text)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "day %d part %d: %d\n", day, p, answer)
	}

	return nil
}
