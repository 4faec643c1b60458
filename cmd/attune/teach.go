package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var teachCmd = &cobra.Command{
	Use:   "teach <query> <answer>",
	Short: "Store an answer directly",
	Long: `Stores an answer for a query without going through the chain. The query
also becomes an alias of the answer, so closely phrased follow-ups
normalize onto it.`,
	Args: cobra.ExactArgs(2),
	RunE: runTeach,
}

func init() {
	rootCmd.AddCommand(teachCmd)
}

func runTeach(cmd *cobra.Command, args []string) error {
	app, _, err := setup()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Teach(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Remembered: %q\n", args[0])
	return nil
}
