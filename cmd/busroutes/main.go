package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/busroutes"
	"github.com/fwojciec/busroutes/console"
	brhttp "github.com/fwojciec/busroutes/http"
	"github.com/fwojciec/busroutes/prometheus"
	"github.com/fwojciec/busroutes/regex"
	"github.com/fwojciec/busroutes/schedule"
	brslog "github.com/fwojciec/busroutes/slog"
	"github.com/fwojciec/busroutes/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for interactive prompts. Set before calling Run().
	Stdin io.Reader

	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database, opened only by commands that archive snapshots.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("busroutes"),
		kong.Description("Look up bus routes and stops from published transit schedules"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLConfig),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	deps.BaseURL = cli.BaseURL

	// Wire the fetch and extraction pipeline, innermost first
	var fetcher busroutes.Fetcher = brhttp.NewFetcher(
		brhttp.WithTimeout(cli.Timeout),
		brhttp.WithRateLimit(cli.RateLimit),
		brhttp.WithUserAgent(cli.UserAgent),
	)
	defer fetcher.Close()

	var metrics *prometheus.Metrics
	if cli.MetricsFile != "" {
		metrics = prometheus.NewMetrics()
		fetcher = prometheus.NewMetricsFetcher(fetcher, metrics)
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = brslog.NewLoggingFetcher(fetcher, logger)
	}

	extractor := regex.NewExtractor()
	var schedules busroutes.ScheduleService = &schedule.Service{
		Fetcher:      fetcher,
		Cities:       extractor,
		Destinations: extractor,
		BaseURL:      cli.BaseURL,
	}
	if metrics != nil {
		schedules = prometheus.NewMetricsScheduleService(schedules, metrics)
	}
	if logger != nil {
		schedules = brslog.NewLoggingScheduleService(schedules, logger)
	}
	deps.Schedules = schedules
	deps.Prompter = console.NewPrompter(m.Stdin, stdout)

	// Open the archive only for commands that use it
	switch commandName(kongCtx) {
	case "snapshot", "history":
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set BUSROUTES_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()
		deps.Snapshots = sqlite.NewSnapshotService(m.DB)
	}

	err = kongCtx.Run(deps)

	if metrics != nil {
		if werr := metrics.WriteTextfile(cli.MetricsFile); werr != nil {
			fmt.Fprintf(stderr, "warning: failed to write metrics to %q: %v\n", cli.MetricsFile, werr)
		}
	}

	return err
}

// commandName returns the first word of the selected command.
func commandName(ctx *kong.Context) string {
	fields := strings.Fields(ctx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func defaultDBPath() string {
	if path := os.Getenv("BUSROUTES_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "busroutes.db"
	}
	dir := filepath.Join(home, ".busroutes")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "busroutes.db")
}
