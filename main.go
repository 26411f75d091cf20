package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"quadpic/compress"
	"quadpic/inspect"
	"quadpic/parallel"
)

type cli struct {
	LogLevel  slog.Level `help:"Minimum level of logged messages (debug, info, warn, error)" default:"info"`
	LogFormat string     `help:"Log output format" enum:"text,json" default:"text"`
	Workers   int        `help:"Number of pictures processed in parallel, 0 for one per CPU" default:"0" env:"QUADPIC_WORKERS"`

	Compress compress.CLICmd `cmd:"" help:"Approximate pictures with flat color quadtree regions"`
	Inspect  inspect.CLICmd  `cmd:"" help:"Print quadtree statistics of pictures without writing them"`
}

func setupLogger(level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	var conf cli
	kctx := kong.Parse(&conf,
		kong.Name("quadpic"),
		kong.Description("Lossy quadtree color compression of pictures."),
		kong.UsageOnError(),
	)

	setupLogger(conf.LogLevel, conf.LogFormat)
	slog.Debug("running", "command", kctx.Command(), "workers", conf.Workers)

	pool := parallel.Start(conf.Workers)
	if err := kctx.Run(pool.Do, pool.Wait); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
