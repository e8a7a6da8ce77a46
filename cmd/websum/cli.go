package main

import (
	"net"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Path to a YAML config file whose keys mirror flag names"`

	Host       string        `default:"0.0.0.0" hidden:"" help:"Interface to bind"`
	Port       int           `short:"p" env:"PORT" default:"5000" help:"Port to listen on"`
	Timeout    time.Duration `short:"t" default:"15s" help:"Timeout for fetching a page"`
	UserAgent  string        `name:"user-agent" help:"User-Agent header sent when fetching pages"`
	Extractor  string        `short:"e" enum:"tags,readability,trafilatura" default:"tags" help:"Text extraction strategy (tags, readability, trafilatura)"`
	Sentences  int           `short:"s" default:"5" help:"Number of sentences in a summary"`
	MinContent int           `name:"min-content" default:"100" help:"Minimum extracted characters required to summarize"`
	RateLimit  float64       `name:"rate-limit" default:"0" help:"Outbound requests per second per host (0 disables)"`
	Retries    int           `default:"0" help:"Retries for a failed fetch, with backoff from 1s (0 disables)"`
	LogLevel   string        `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Minimum log level"`
	LogFormat  string        `name:"log-format" enum:"text,json" default:"text" help:"Log output format"`
}

// Addr returns the listener address.
func (c *CLI) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
