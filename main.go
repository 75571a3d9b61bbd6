// Aqiform serves a registration and login page with a country to city
// cascade and a simulated air quality reading, and offers the same form in
// the terminal.
//
// Usage:
//
//	aqiform serve [flags]
//	aqiform tui [flags]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aqiform/config"
	"aqiform/models"
	"aqiform/tui"
	"aqiform/web"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

// sweepInterval is how often idle page sessions are evicted
const sweepInterval = time.Minute

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aqiform",
	Short: "Registration form with a simulated air quality panel",
	Long: `Aqiform serves a registration page and a login page. Choosing a country
fills the city list; choosing a city shows a simulated AQI reading.
Submissions are validated only and nothing is stored.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Flags shared by serve and tui
var (
	configPath  string
	addr        string
	minAge      int
	loginErrors string
	logLevel    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Example: `  # Start with defaults on :8000
  aqiform serve

  # Require 18+ and collect login errors in one alert box
  aqiform serve --min-age 18 --login-errors alert

  # Load settings from a file; flags still win
  aqiform serve --config aqiform.yaml --log-level debug`,
	RunE: runServe,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Fill in the form in the terminal",
	RunE:  runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aqiform %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVar(&minAge, "min-age", models.DefaultMinAge, "Minimum age in years for registration (0 disables the age rule)")

	serveCmd.Flags().StringVar(&addr, "addr", ":8000", "Listen address")
	serveCmd.Flags().StringVar(&loginErrors, "login-errors", string(models.LoginErrorsInline), "Login error style: inline or alert")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers explicitly set flags over the file and environment
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = addr
	}
	if flags.Changed("min-age") {
		cfg.MinAge = minAge
	}
	if flags.Changed("login-errors") {
		cfg.LoginErrors = loginErrors
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return serr.Wrap(err, "failed to load config")
	}
	logger.SetLogLevel(cfg.LogLevel)

	if cfg.UsesDevSecret() {
		logger.Info("Using the development session secret; set " + config.EnvSessionSecret + " in production")
	}

	app, err := web.NewApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go app.Sessions.RunSweeper(ctx, sweepInterval)

	logger.Info("Form policy", "min_age", cfg.MinAge, "login_errors", cfg.LoginErrors)

	srv := web.NewServer(app, rweb.ServerOptions{Address: cfg.Addr, Verbose: cfg.LogLevel == "debug"})
	return web.Run(srv, cfg.Addr)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return serr.Wrap(err, "failed to load config")
	}
	// The terminal owns stdout; keep the logger quiet
	logger.SetLogLevel("error")

	orch := models.NewOrchestrator(cfg.Policy(), models.NewCascade())
	return tui.Run(orch)
}
