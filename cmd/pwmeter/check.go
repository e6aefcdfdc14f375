package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pwmeter/pwmeter-go/internal/model"
	"github.com/pwmeter/pwmeter-go/internal/password"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

const meterWidth = 30

func checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Rate the strength of a password",
		Long: "Rate the strength of a password. Without an argument the password is read\n" +
			"from a hidden prompt, or from the first line of stdin when it is not a terminal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				var err error
				if pw, err = readPassword(cmd); err != nil {
					return err
				}
			}

			printResult(cmd.OutOrStdout(), password.Evaluate(pw))
			return nil
		},
	}
}

// readPassword prompts without echo on a terminal and falls back to reading
// one line from the command's input.
func readPassword(cmd *cobra.Command) (string, error) {
	if in, ok := cmd.InOrStdin().(*os.File); ok && terminal.IsTerminal(int(in.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter your password: ")
		b, err := terminal.ReadPassword(int(in.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printResult(w io.Writer, res password.Result) {
	pct := model.MeterPercent(res.Rating)
	filled := meterWidth * pct / 100

	fmt.Fprintf(w, "Rating:   %s (%d/%d)\n", res.Rating, res.Score, password.MaxScore)
	fmt.Fprintf(w, "Strength: [%s%s] %d%%\n", strings.Repeat("#", filled), strings.Repeat("-", meterWidth-filled), pct)
	fmt.Fprintln(w, res.Message)
	if res.Rating == password.Strong {
		return
	}
	for _, f := range res.Feedback {
		fmt.Fprintf(w, "  - %s\n", f.Message)
	}
}
