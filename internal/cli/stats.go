package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/phonicle/internal/render"
	"github.com/robalobadob/phonicle/internal/store"
)

func newStatsCommand() *cobra.Command {
	var savePath string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics from the local save file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			if savePath == "" {
				savePath = cfg.SavePath
			}
			svc, err := newService(cfg, store.NewFile(savePath), time.Time{}, consoleLogger())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Stats(svc.Stats(cmd.Context(), localPlayer)))
			return nil
		},
	}
	cmd.Flags().StringVar(&savePath, "save", "", "save file (default $SAVE_PATH)")
	return cmd
}
