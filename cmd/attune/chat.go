package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/attune"
	"github.com/hupe1980/attune/core"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive session with feedback capture",
	Long: `Starts a read-eval loop. Every line is resolved through the chain and
the answer is shown with its source. Rate the most recent answer with
"+" or "-"; unrated answers count as accepted after the feedback
window. "exit" or "quit" leaves the session.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// linePrompter answers teaching prompts from the same line source the REPL
// reads, so the dialogue stays in one stream.
type linePrompter struct {
	out   io.Writer
	lines *bufio.Scanner
}

func (p *linePrompter) Prompt(_ context.Context, question string) (string, error) {
	fmt.Fprintln(p.out, "attune> "+question)
	fmt.Fprint(p.out, "you> ")

	if !p.lines.Scan() {
		if err := p.lines.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.lines.Text()), nil
}

func runChat(cmd *cobra.Command, _ []string) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	prompter := &linePrompter{out: out, lines: scanner}

	app, _, err := setup(func(o *attune.Options) {
		o.Prompter = prompter
	})
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Fprintln(out, "Ask me anything. Rate the last answer with + or -. Type exit to quit.")

	var lastInput, lastState, lastAction, lastShown string

	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue

		case line == "exit" || line == "quit":
			fmt.Fprintln(out, "Bye.")
			return nil

		case line == "+" || line == "-":
			if lastState == "" {
				fmt.Fprintln(out, "Nothing to rate yet.")
				continue
			}
			reward := core.RewardPositive
			if line == "-" {
				reward = core.RewardNegative
			}
			if err := app.RecordFeedback(lastState, lastAction, reward); err != nil {
				fmt.Fprintln(out, "Could not record feedback:", err)
				continue
			}
			fmt.Fprintln(out, "Got it, thanks.")
			continue

		case line == lastInput:
			// Asking the same thing back to back re-shows the answer
			// without inflating the interaction log.
			fmt.Fprintln(out, "attune> "+lastShown)
			continue
		}

		res, err := app.Resolve(cmd.Context(), line)
		if err != nil {
			if errors.Is(err, core.ErrNeedsTeaching) {
				fmt.Fprintln(out, "attune> I don't know that one yet.")
				continue
			}
			fmt.Fprintln(out, "attune> Sorry, that went wrong:", err)
			continue
		}

		lastInput = line
		lastState, lastAction = res.Input, res.Text
		lastShown = res.Display()
		fmt.Fprintln(out, "attune> "+lastShown)
	}
}
