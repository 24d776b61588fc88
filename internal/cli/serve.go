package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/phonicle/internal/httpserver"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			log.Info().Str("driver", cfg.StoreDriver).Msg("store ready")

			svc, err := newService(cfg, st, time.Time{}, log.Logger)
			if err != nil {
				return err
			}
			today := svc.Today()
			log.Info().Str("tz", cfg.Timezone).Str("hint", today.Hint).Msg("daily word selected")

			srv := httpserver.New(svc, cfg, log.Logger)
			log.Info().Str("port", cfg.Port).Msg("starting phonicle")
			return srv.Start(ctx, ":"+cfg.Port)
		},
	}
}
