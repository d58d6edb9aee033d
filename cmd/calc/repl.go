package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/tliron/commonlog"

	"github.com/parsy/calc"
)

// REPL reads lines, evaluates them and prints the result or "failure".
type REPL struct {
	config *Config
	engine engine
	out    io.Writer
	log    commonlog.Logger
}

func newREPL(config *Config, engine engine, out io.Writer) *REPL {
	return &REPL{
		config: config,
		engine: engine,
		out:    out,
		log:    commonlog.GetLogger("calc.repl"),
	}
}

// Process a single line, returning false if it was the exit sentinel.
func (r *REPL) Process(line string) bool {
	if line == r.config.Exit {
		return false
	}
	if r.config.Echo {
		fmt.Fprintln(r.out, calc.Normalize(line))
	}
	value, ok := r.engine.Evaluate(line)
	if !ok {
		r.log.Debugf("no match for %q", line)
		fmt.Fprintln(r.out, "failure")
		return true
	}
	fmt.Fprintln(r.out, value)
	return true
}

// Run the loop over piped input until EOF or the exit sentinel.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !r.Process(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// RunInteractive runs the loop on the terminal with line editing and history.
func (r *REPL) RunInteractive() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.config.Prompt,
		HistoryFile:     r.config.History,
		InterruptPrompt: "^C",
		EOFPrompt:       r.config.Exit,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()
	r.out = rl.Stdout()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if !r.Process(line) {
			return nil
		}
	}
}
