package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/attune"
	"github.com/hupe1980/attune/core"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Resolve a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	// One-shot invocations exit before any implicit feedback could fire,
	// so the window is disabled outright.
	app, _, err := setup(func(o *attune.Options) {
		o.FeedbackWindow = 0
	})
	if err != nil {
		return err
	}
	defer app.Close()

	question := strings.Join(args, " ")

	res, err := app.Resolve(cmd.Context(), question)
	if err != nil {
		if errors.Is(err, core.ErrNeedsTeaching) {
			fmt.Fprintf(cmd.OutOrStdout(), "I don't know that yet. Teach me:\n  attune teach %q \"<answer>\"\n", question)
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Display())
	return nil
}
