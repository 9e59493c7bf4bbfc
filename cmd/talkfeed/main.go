package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/talkfeed/goquery"
	tfhttp "github.com/fwojciec/talkfeed/http"
	tfslog "github.com/fwojciec/talkfeed/slog"
	"github.com/fwojciec/talkfeed/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the snapshot service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("talkfeed"),
		kong.Description("Publish the dhammatalks.org evening talks as a podcast feed."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars(Vars()),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'talkfeed --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Source = cli.Source

	fetcher := tfhttp.NewFetcher(
		tfhttp.WithTimeout(cli.Timeout),
		tfhttp.WithUserAgent(cli.UserAgent),
		tfhttp.WithRetryDelays(retryDelays(cli.Retries)),
		tfhttp.WithLogger(deps.Logger),
	)
	deps.Fetcher = tfslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer deps.Fetcher.Close()
	deps.Parser = tfslog.NewLoggingParser(goquery.NewParser(), deps.Logger)

	if needsDB(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TALKFEED_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Snapshots = tfslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), deps.Logger)
		deps.HashCatalog = sqlite.HashCatalog
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the selected command reads or records history.
func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "history", "talks":
		return true
	case "build":
		return !cli.Build.NoHistory
	}
	return false
}

// retryDelays returns up to n of the default backoff delays.
func retryDelays(n int) []time.Duration {
	delays := tfhttp.DefaultRetryDelays()
	return delays[:max(0, min(n, len(delays)))]
}

func defaultDBPath() string {
	if path := os.Getenv("TALKFEED_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "talkfeed.db"
	}
	dir := filepath.Join(home, ".talkfeed")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "talkfeed.db")
}
