package main

import (
	"fmt"
	"time"

	"study-assistant-be/internal/config"
	"study-assistant-be/internal/pkg/serverutils"

	"github.com/spf13/cobra"
)

var (
	tokenUserID uint
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a development bearer token with JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.App.JwtSecret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}
		if tokenUserID == 0 {
			return fmt.Errorf("--user must be a positive id")
		}
		token, err := serverutils.IssueToken(cfg.App.JwtSecret, tokenUserID, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().UintVarP(&tokenUserID, "user", "u", 0, "user id to put in the user_id claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
