package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/websum"
	"github.com/fwojciec/websum/digest"
	"github.com/fwojciec/websum/goquery"
	wshttp "github.com/fwojciec/websum/http"
	"github.com/fwojciec/websum/lingua"
	"github.com/fwojciec/websum/lsa"
	"github.com/fwojciec/websum/readability"
	wsslog "github.com/fwojciec/websum/slog"
	"github.com/fwojciec/websum/throttle"
	"github.com/fwojciec/websum/trafilatura"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Parsed configuration. Set by Run.
	Config *CLI

	// HTTP server. Set by Run once the listener is open.
	Server *wshttp.Server

	// Ready, if set, is closed once the server is accepting connections.
	Ready chan struct{}
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run parses args, wires the summarizer and serves until ctx is done.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("websum"),
		kong.Description("Serve a web form that summarizes web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(yamlLoader),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if cli.Sentences <= 0 {
		return fmt.Errorf("sentences must be positive, got %d", cli.Sentences)
	}
	if cli.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", cli.Retries)
	}
	m.Config = cli

	logger, err := newLogger(cli, stderr)
	if err != nil {
		return err
	}

	// Initialized once per process, before the listener accepts connections.
	tokenizer, err := lsa.NewTokenizer()
	if err != nil {
		logger.Error("Failed to load sentence tokenizer", "err", err)
	}

	opts := []wshttp.Option{wshttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, wshttp.WithUserAgent(cli.UserAgent))
	}
	var fetcher websum.Fetcher = wshttp.NewFetcher(opts...)
	defer fetcher.Close()
	if cli.Retries > 0 {
		fetcher = throttle.NewRetryFetcher(fetcher, throttle.RetryDelays(cli.Retries), logger)
	}
	if cli.RateLimit > 0 {
		fetcher = throttle.NewFetcher(fetcher, throttle.NewDomainLimiter(cli.RateLimit))
	}

	s := wshttp.NewServer()
	s.Addr = cli.Addr()
	s.Logger = logger
	s.Digester = &digest.Digester{
		Fetcher:          wsslog.NewLoggingFetcher(fetcher, logger),
		Extractor:        wsslog.NewLoggingExtractor(newExtractor(cli.Extractor), logger),
		Summarizer:       wsslog.NewLoggingSummarizer(lsa.NewSummarizer(tokenizer), logger),
		Languages:        lingua.NewDetector(),
		Logger:           logger,
		SentenceCount:    cli.Sentences,
		MinContentLength: cli.MinContent,
	}

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr, err)
	}
	m.Server = s
	logger.Info("Listening", "url", s.URL(), "extractor", cli.Extractor)
	if m.Ready != nil {
		close(m.Ready)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(s.Serve)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		return s.Close()
	})
	return g.Wait()
}

func newExtractor(name string) websum.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func newLogger(cli *CLI, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cli.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(wsslog.NewContextHandler(h)), nil
}
