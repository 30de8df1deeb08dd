package main

import (
	"context"
	"io"
	"time"

	"github.com/tanawatp/newslingo/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Read ReadCmd `cmd:"" help:"Fetch a news article and produce a Thai summary and vocabulary table"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL       string        `arg:"" help:"News article URL (http:// or https://)"`
	Delegate  bool          `short:"d" help:"Delegate fetching and cleaning to the model instead of scraping locally"`
	Extractor string        `default:"trafilatura" enum:"trafilatura,tags" help:"Local extraction strategy"`
	Model     string        `default:"gemini-2.5-flash" help:"Gemini model identifier"`
	Timeout   time.Duration `default:"10s" help:"HTTP fetch timeout"`
	RPS       float64       `default:"0" help:"Client-side request rate limit (0 disables)"`
	Verbose   bool          `short:"v" help:"Log stage progress"`
}
