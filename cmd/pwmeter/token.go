package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pwmeter/pwmeter-go/internal/token"
	"github.com/spf13/cobra"
)

func tokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API token signed with API_TOKEN_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _ := cmd.Flags().GetString("client")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			secret := os.Getenv("API_TOKEN_SECRET")
			if secret == "" {
				return errors.New("API_TOKEN_SECRET is not set")
			}

			signed, err := token.GenerateToken(client, secret, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().String("client", "", "client id recorded in the token")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime (e.g. 30m, 24h)")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
