package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/robalobadob/phonicle/internal/game"
	"github.com/robalobadob/phonicle/internal/render"
	"github.com/robalobadob/phonicle/internal/session"
	"github.com/robalobadob/phonicle/internal/store"
)

const helpText = `Guess the five-letter word in six tries.
After each guess the tiles show how close you were:
  green   the letter is in the word and in the right spot
  yellow  the letter is in the word but in another spot
  grey    the letter is not in the word (or not again)
Every answer practices one sound; :hint lists ways to spell it.
Commands: :hint  :stats  :help  :quit`

func newPlayCommand() *cobra.Command {
	var savePath, date string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play today's word in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			if savePath == "" {
				savePath = cfg.SavePath
			}
			day, err := parseDate(date, cfg.Location())
			if err != nil {
				return err
			}
			svc, err := newService(cfg, store.NewFile(savePath), day, consoleLogger())
			if err != nil {
				return err
			}
			return play(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&savePath, "save", "", "save file (default $SAVE_PATH)")
	cmd.Flags().StringVar(&date, "date", "", "play the word of another day (YYYY-MM-DD)")
	return cmd
}

// play reads one guess per line from in until the game ends or the player quits.
func play(ctx context.Context, svc *session.Service, in io.Reader, out io.Writer) error {
	st := svc.State(ctx, localPlayer)
	fmt.Fprintln(out, render.Game(st))
	if st.Outcome.Finished() {
		fmt.Fprintln(out, render.Stats(st.Stats()))
		return nil
	}
	fmt.Fprintln(out, "Type a guess and press Enter. :help for help.")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case ":q", ":quit":
			return nil
		case ":help":
			fmt.Fprintln(out, helpText)
			continue
		case ":hint":
			fmt.Fprintln(out, render.Hint(svc.Hint(ctx, localPlayer)))
			continue
		case ":stats":
			fmt.Fprintln(out, render.Stats(svc.Stats(ctx, localPlayer)))
			continue
		}
		if utf8.RuneCountInString(line) != game.Letters {
			fmt.Fprintf(out, "Guesses are %d letters.\n", game.Letters)
			continue
		}

		st = guess(ctx, svc, line)
		fmt.Fprintln(out, render.Game(st))
		if st.CurrentRow().Guess[0].Status == game.StatusInvalid {
			fmt.Fprintln(out, "Not in word list.")
		}
		if st.Outcome.Finished() {
			fmt.Fprintln(out, render.Stats(st.Stats()))
			return nil
		}
	}
	return sc.Err()
}

// guess clears the current row, types word and submits it.
func guess(ctx context.Context, svc *session.Service, word string) game.State {
	st := svc.State(ctx, localPlayer)
	for i := 0; i < st.CurrentRow().Cursor; i++ {
		svc.Delete(ctx, localPlayer)
	}
	for _, r := range word {
		svc.EnterLetter(ctx, localPlayer, r)
	}
	return svc.Submit(ctx, localPlayer)
}
