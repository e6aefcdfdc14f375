package main

import (
	"fmt"

	"github.com/pwmeter/pwmeter-go/internal/password"
	"github.com/spf13/cobra"
)

func generateCommand() *cobra.Command {
	opts := password.DefaultOptions()
	var (
		count int
		seed  uint64
		check bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: "Generate random passwords from the selected character classes.\n" +
			"Characters are drawn with math/rand; do not use the output as issued credentials.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			gen := password.NewGenerator()
			if cmd.Flags().Changed("seed") {
				gen = password.NewSeededGenerator(seed)
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				pw, err := gen.Generate(opts)
				if err != nil {
					return err
				}
				if !check {
					fmt.Fprintln(out, pw)
					continue
				}
				res := password.Evaluate(pw)
				fmt.Fprintf(out, "%s\t%s (%d/%d)\n", pw, res.Rating, res.Score, password.MaxScore)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", opts.Length, "password length")
	cmd.Flags().BoolVar(&opts.Uppercase, "upper", true, "include uppercase letters")
	cmd.Flags().BoolVar(&opts.Lowercase, "lower", true, "include lowercase letters")
	cmd.Flags().BoolVar(&opts.Digits, "digits", true, "include digits")
	cmd.Flags().BoolVar(&opts.Special, "special", true, "include special characters ("+password.SpecialChars+")")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output")
	cmd.Flags().BoolVar(&check, "check", false, "rate each generated password")

	return cmd
}
