package cmd

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/config"
	"github.com/lepinkainen/bookaura/internal/ratelimit"
)

// CLI represents the complete command structure for the bookaura application
type CLI struct {
	// Global flags
	APIURL  string        `name:"api-url" help:"Base URL of the book service (overrides api.url)"`
	Timeout time.Duration `help:"Per-request timeout, 0 waits indefinitely (overrides api.timeout)"`
	Rate    float64       `help:"Maximum requests per second, 0 disables the guard (overrides api.rate)" default:"-1"`
	Debug   bool          `help:"Enable debug logging"`

	Browse     BrowseCmd     `cmd:"" default:"1" help:"Browse, search and chat about books interactively"`
	Search     SearchCmd     `cmd:"" help:"Search for books matching a query"`
	Ask        AskCmd        `cmd:"" help:"Ask the literary expert a question about a book"`
	Info       InfoCmd       `cmd:"" help:"Show enriched information for a book"`
	Categories CategoriesCmd `cmd:"" help:"List the catalog categories"`
	Bench      BenchCmd      `cmd:"" help:"Benchmark search latency from a CSV of queries"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(false)
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("bookaura"),
		kong.Description("Discover books, ask about them and look up enriched details from a BookAura service."),
		kong.UsageOnError(),
	)

	if cli.Debug {
		initLogging(true)
	}

	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.LoadEnvFiles(".env.local", ".env")
	config.SetDefaults()

	viper.SetEnvPrefix("BOOKAURA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// BOOKAURA_TIMEOUT and BOOKAURA_RATE are shorter aliases for the api.* keys
	if err := viper.BindEnv(config.KeyAPITimeout, "BOOKAURA_API_TIMEOUT", "BOOKAURA_TIMEOUT"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv(config.KeyAPIRate, "BOOKAURA_API_RATE", "BOOKAURA_RATE"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetAPIURL(cli.APIURL)
	if cli.Timeout > 0 {
		config.SetTimeout(cli.Timeout)
	}
	if cli.Rate >= 0 {
		config.SetRequestsPerSecond(cli.Rate)
	}
}

// newClient builds a service client from the resolved configuration.
var newClient = func() *bookapi.Client {
	return bookapi.NewClient(
		bookapi.WithBaseURL(config.APIURL),
		bookapi.WithTimeout(config.Timeout),
		bookapi.WithRateLimiter(ratelimit.New("bookaura", config.RequestsPerSecond)),
	)
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Stdout carries command output and the TUI
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
