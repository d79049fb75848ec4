package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tuannm99/bizconv/internal"
	"github.com/tuannm99/bizconv/internal/value"
	"github.com/tuannm99/bizconv/internal/wire"
	"github.com/tuannm99/bizconv/pkg/util"
)

const usage = `usage: bizconv [flags] <command> [args]

commands:
  encode [--kind K] VALUE...   encode native literals into wire values
  decode FILE|-|DOC            decode a wire value document or frame stream
  criteria FILE|-|DOC          build wire criteria from criteria params
  decode-criteria FILE|-|DOC   decode wire criteria back to native values
  enum [TABLE [NAME|CODE]]     list tables, a table, or resolve one entry
  parameter COLUMN VALUE       encode one named parameter (honors --kind)
  selection FILE|-|DOC         build a selection from selection params
  decode-entity FILE|-|DOC     decode an entity or lookup record
  repl                         interactive shell

flags:
`

func main() {
	fs := pflag.NewFlagSet("bizconv", pflag.ContinueOnError)
	var (
		cfgPath  = fs.String("config", "", "YAML config file")
		_        = fs.String("format", "json", "output format: json|yaml|cbor|frame")
		_        = fs.String("log-level", "info", "log level: debug|info|warn|error")
		_        = fs.String("log-format", "text", "log format: text|json")
		_        = fs.Bool("uppercase", false, "upper-case decoded strings")
		_        = fs.Int("integer-width", value.DefaultIntegerWidth, "digits at which integers are sent as decimals")
		kind     = fs.String("kind", "", "explicit wire kind for encode (INTEGER, DECIMAL, BOOLEAN, STRING, DATE)")
		outPath  = fs.String("out", "", "write output to this file instead of stdout")
		inFormat = fs.String("input-format", "", "input format: json|yaml|cbor|frame (default: by file extension)")
		sorted   = fs.Bool("sorted", false, "decode-entity: return values as key-sorted pairs")
		histPath = fs.String("history", defaultHistoryPath(), "repl history file path")
		histMax  = fs.Int("history-max", 2000, "max history lines loaded into memory")
	)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	cfg, err := internal.LoadConfig(*cfgPath, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := util.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	format, err := wire.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	var in wire.Format
	if *inFormat != "" {
		if in, err = wire.ParseFormat(*inFormat); err != nil {
			fmt.Fprintf(os.Stderr, "input: %v\n", err)
			os.Exit(1)
		}
	}

	b := cfg.Builder()
	b.Logger = logger
	a := &app{
		builder: b,
		log:     logger,
		format:  format,
		out:     os.Stdout,
		kind:    *kind,
		outPath: *outPath,

		inFormat: in,
		sorted:   *sorted,
	}

	cmd, args := fs.Arg(0), fs.Args()[1:]
	if cmd == "repl" {
		if err := a.repl(*histPath, *histMax); err != nil {
			fmt.Fprintf(os.Stderr, "repl: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Debug("run", "app", cfg.AppName, "command", cmd, "args", len(args))
	if err := a.run(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
