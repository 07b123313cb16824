package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pkg.jsn.cam/sesolver/internal/config"
	"pkg.jsn.cam/sesolver/internal/solver"
	"pkg.jsn.cam/sesolver/pkg/quadratic"
)

var (
	input      = flag.String("input", "", "Read coefficients from this file (- for stdin) instead of the arguments")
	sequential = flag.Bool("sequential", false, "Solve in input order on a single goroutine")
	workers    = flag.Int("workers", 0, "Solver goroutines (default $"+config.EnvWorkers+" or the CPU count)")
)

const usage = "Usage: sesolver [a1] [b1] [c1] [a2] [b2] [c2] ...\n"

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	config.SetupLogging(zerolog.InfoLevel)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	start := time.Now()

	tokens, err := readTokens(args)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("failed to read coefficients")
	}
	if len(tokens) < quadratic.CoefficientsPerEquation {
		fmt.Print(usage)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var stats solver.Stats
	if *sequential {
		stats, err = solver.Sequential(tokens, os.Stdout)
	} else {
		n := *workers
		if n == 0 {
			n = cfg.Workers
		}
		stats, err = (&solver.Manager{Workers: n}).Run(ctx, tokens, os.Stdout)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("solving failed")
	}

	log.Debug().
		Int64("solved", stats.Solved).
		Int64("rejected", stats.Rejected).
		Msg("done")
	fmt.Println(elapsed(time.Since(start)))
}

// parseArgs parses the flags in front of the coefficients and returns the
// coefficients. A token like -3 ends the flags instead of being read as one.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if len(arg) < 2 || arg[0] != '-' || isDigit(arg[1]) {
			break
		}

		i++
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		i++ // flag value
	}
	i = min(i, len(args))

	if err := fs.Parse(args[:i]); err != nil {
		return nil, err
	}
	return args[i:], nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func readTokens(args []string) ([]string, error) {
	switch *input {
	case "":
		return args, nil
	case "-":
		return quadratic.Tokens(os.Stdin)
	}

	f, err := os.Open(*input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return quadratic.Tokens(f)
}

// elapsed reports milliseconds, or microseconds below one millisecond
func elapsed(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("Time elapsed: %dµs", d.Microseconds())
	}
	return fmt.Sprintf("Time elapsed: %dms", d.Milliseconds())
}
