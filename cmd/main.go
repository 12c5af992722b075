// Package main provides the CLI entrypoint of the MCA backend.
// It wires subcommands (migrate, serve, schedule, stats), loads configuration,
// and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mca/internal/config"
	"mca/pkg/calendar"
	"mca/pkg/logger"
	"mca/pkg/notifier"
	"mca/pkg/notifier/smtp"
	"mca/pkg/storage/postgres"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// loadCalendar builds the business calendar: US federal holidays of the
// configured years plus the optional holiday file.
func loadCalendar(ctx context.Context, cfg *config.Config) *calendar.Calendar {
	var extra []time.Time
	if cfg.Schedule.HolidayFile != "" {
		holidays, err := calendar.LoadFile(cfg.Schedule.HolidayFile)
		if err != nil {
			logger.Fatal(ctx, "could not load holiday file", zap.Error(err))
		}
		extra = holidays
	}

	cal := calendar.NewUS(cfg.Schedule.HolidayFromYear, cfg.Schedule.HolidayToYear, extra...)
	logger.Debug(ctx, "loaded business calendar", zap.Int("holidays", cal.Holidays()))

	return cal
}

// getNotifier returns the SMTP notifier when enabled and a logging one otherwise.
func getNotifier(cfg *config.Config) notifier.Notifier {
	if !cfg.Notifier.Enabled {
		return notifier.NewLog()
	}

	return smtp.New(smtp.Options{
		Host:          cfg.Notifier.Host,
		Port:          cfg.Notifier.Port,
		Username:      cfg.Notifier.Username,
		Password:      cfg.Notifier.Password,
		From:          cfg.Notifier.From,
		RatePerSecond: cfg.Notifier.RatePerSecond,
		Burst:         cfg.Notifier.Burst,
	})
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mca",
		Short: "Merchant cash advance backend",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		scheduleCommand(cfg),
		statsCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so the config can be
// loaded before cobra parses subcommand flags.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case strings.HasPrefix(arg, "-c="):
			return []string{arg}
		case strings.HasPrefix(arg, "--config="):
			return []string{"-c=" + strings.TrimPrefix(arg, "--config=")}
		}
	}

	return nil
}
