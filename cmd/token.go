package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/todolists/auth"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for the configured JWT secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		token, err := auth.CreateToken(cfg.Auth, tokenSubject, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Token subject (required)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	tokenCmd.MarkFlagRequired("subject")
}
