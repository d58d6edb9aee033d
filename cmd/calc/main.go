// Command calc evaluates arithmetic expressions, either given as arguments or read a line at a
// time until "exit".
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/parsy/calc"
)

type cli struct {
	config    *string
	prompt    *string
	exit      *string
	history   *string
	precision *string
	digits    *int
	quiet     *bool
	trace     *bool
	grammar   *bool
	verbose   *int
	log       *string
	exprs     *[]string
}

func newCLI(app *kingpin.Application) *cli {
	return &cli{
		config:    app.Flag("config", "YAML configuration file.").PlaceHolder("FILE").ExistingFile(),
		prompt:    app.Flag("prompt", "Interactive prompt.").String(),
		exit:      app.Flag("exit", "Line that ends the loop.").String(),
		history:   app.Flag("history", "Interactive history file.").PlaceHolder("FILE").String(),
		precision: app.Flag("precision", "Floating point precision in bits.").Enum("32", "64"),
		digits:    app.Flag("digits", "Significant digits to print, 0 for the shortest exact value.").Default("-1").Int(),
		quiet:     app.Flag("quiet", "Do not echo the normalised line before its result.").Short('q').Bool(),
		trace:     app.Flag("trace", "Trace matching to stderr.").Bool(),
		grammar:   app.Flag("grammar", "Print the grammar as EBNF and exit.").Bool(),
		verbose:   app.Flag("verbose", "Increase log verbosity.").Short('v').Counter(),
		log:       app.Flag("log", "Log file.").PlaceHolder("FILE").String(),
		exprs:     app.Arg("expression", "Expressions to evaluate, one per argument, instead of reading lines.").Strings(),
	}
}

// configure parses args and returns the configuration file overlaid with the flags.
func configure(app *kingpin.Application, args []string) (*cli, *Config, error) {
	c := newCLI(app)
	if _, err := app.Parse(args); err != nil {
		return nil, nil, err
	}
	config, err := LoadConfig(*c.config)
	if err != nil {
		return nil, nil, err
	}
	c.apply(config)
	if err := config.validate(); err != nil {
		return nil, nil, err
	}
	return c, config, nil
}

func (c *cli) apply(config *Config) {
	if *c.prompt != "" {
		config.Prompt = *c.prompt
	}
	if *c.exit != "" {
		config.Exit = *c.exit
	}
	if *c.history != "" {
		config.History = *c.history
	}
	switch *c.precision {
	case "32":
		config.Precision = 32
	case "64":
		config.Precision = 64
	}
	if *c.digits >= 0 {
		config.Digits = *c.digits
	}
	if *c.quiet {
		config.Echo = false
	}
	if *c.log != "" {
		config.Log = *c.log
	}
	config.Verbosity += *c.verbose
}

// run the command and return its exit status.
func run(app *kingpin.Application, args []string, in io.Reader, out, stderr io.Writer) int {
	c, config, err := configure(app, args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %s\n", app.Name, err)
		return 2
	}

	var logPath *string
	if config.Log != "" {
		logPath = &config.Log
	}
	commonlog.Configure(config.Verbosity, logPath)
	log := commonlog.GetLogger("calc")
	log.Debugf("configuration %s", repr.String(config))

	options := []calc.Option{}
	if *c.trace {
		options = append(options, calc.Trace(stderr))
	}
	eng, err := newEngine(config.Precision, config.Digits, options...)
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %s\n", app.Name, err)
		return 2
	}

	if *c.grammar {
		fmt.Fprintln(out, eng.Grammar())
		return 0
	}

	if len(*c.exprs) > 0 {
		status := 0
		for _, expr := range *c.exprs {
			value, ok := eng.Evaluate(expr)
			if !ok {
				fmt.Fprintln(out, "failure")
				status = 1
				continue
			}
			fmt.Fprintln(out, value)
		}
		return status
	}

	repl := newREPL(config, eng, out)
	if in == os.Stdin && isInteractive() {
		err = repl.RunInteractive()
	} else {
		err = repl.Run(in)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %s\n", app.Name, err)
		return 1
	}
	return 0
}

func main() {
	app := kingpin.New("calc", "A recursive-descent arithmetic evaluator.")
	os.Exit(run(app, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
