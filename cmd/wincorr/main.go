// Command wincorr applies the optical window correction to single
// reflectance values and prints correction curves.
//
// Usage:
//
//	wincorr [flags] <command> [command flags]
//
// Examples:
//
//	wincorr sample -r 0.10 -u 0.005 -t 0.95
//	wincorr sample -r 0.32 -t 0.86 -w 2 -m extended
//	wincorr curve -t 0.95 --steps 10 --plot curve.png
//	wincorr table --table 0.4:0.83,1.0:0.86,4.8:0.62 0.3 1.2 5.0
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface for wincorr.
type CLI struct {
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (${enum})."`

	Sample SampleCmd `cmd:"" help:"Correct a single measured reflectance."`
	Curve  CurveCmd  `cmd:"" help:"Tabulate corrected against measured reflectance."`
	Table  TableCmd  `cmd:"" help:"Interpolate an inline transmission table."`
}

// runContext is bound into every command's Run method.
type runContext struct {
	out    io.Writer
	logger *slog.Logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wincorr"),
		kong.Description("Optical window correction for reflectance spectra."),
		kong.UsageOnError(),
	)

	logger := newLogger(os.Stderr, cli.LogLevel, cli.LogFormat)
	err := ctx.Run(&runContext{out: os.Stdout, logger: logger})
	if err != nil {
		logger.Error("command failed", "command", ctx.Command(), "error", err)
	}
	ctx.FatalIfErrorf(err)
}
