package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Retrain the policy from the interaction log",
	Long: `Runs a full training pass over the interaction log, independent of the
batch trigger. Useful after importing logs or changing the embedder.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	app, _, err := setup()
	if err != nil {
		return err
	}
	defer app.Close()

	total, err := app.Interactions().Len()
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No interactions recorded yet; nothing to train on.")
		return nil
	}

	if err := app.Train(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Trained on %d interaction(s).\n", total)
	return nil
}
