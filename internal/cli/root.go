// Package cli holds the command line entry points: the HTTP server and a
// terminal client that plays against a local save file.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/phonicle/internal/config"
	"github.com/robalobadob/phonicle/internal/daily"
	"github.com/robalobadob/phonicle/internal/session"
	"github.com/robalobadob/phonicle/internal/store"
	"github.com/robalobadob/phonicle/internal/words"
)

// localPlayer is the save slot used by the terminal client.
const localPlayer = "local"

type ctxConfigKey struct{}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "phonicle",
		Short:         "A daily five-letter word game for practicing phonics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), ctxConfigKey{}, cfg))
			return nil
		},
	}
	root.AddCommand(newServeCommand(), newPlayCommand(), newStatsCommand())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("phonicle")
		os.Exit(1)
	}
}

func configFrom(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(ctxConfigKey{}).(*config.Config)
	return cfg
}

// openStore returns the backend named by cfg.StoreDriver.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return store.NewSQLite(cfg.DBPath)
	case config.DriverRedis:
		return store.NewRedis(ctx, cfg.RedisAddr)
	case config.DriverMemory:
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// newService loads the word tables and builds a session service over st.
// A non-zero date fixes the day being played.
func newService(cfg *config.Config, st store.Store, date time.Time, logger zerolog.Logger) (*session.Service, error) {
	list, err := words.Load(cfg.WordsAnswersFile, cfg.WordsAllowedFile)
	if err != nil {
		return nil, err
	}
	a, g := list.Stats()
	logger.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	opts := []session.Option{session.WithLogger(logger)}
	if !date.IsZero() {
		opts = append(opts, session.WithClock(func() time.Time { return date }))
	}
	return session.New(st, list, daily.NewSelector(list, cfg.Location()), opts...), nil
}

// parseDate reads a YYYY-MM-DD flag value in loc. Empty means today.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date: want YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// consoleLogger writes human-readable logs to stderr for the terminal commands.
func consoleLogger() zerolog.Logger {
	return log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
