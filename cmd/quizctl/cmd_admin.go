package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"thisorthat/pkg/utils"
)

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long:  "Reads a password from the first line of stdin and prints its bcrypt hash.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password on stdin")
			}
			password := strings.TrimRight(line, "\r\n")
			if len(password) < 6 {
				return errors.New("password must be at least 6 characters")
			}

			hash, err := utils.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin JWT signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadRuntime()
			if err != nil {
				return err
			}
			if subject == "" {
				subject = cfg.Auth.AdminEmail
			}
			if ttl <= 0 {
				ttl = cfg.Auth.TokenTTL
			}

			issuer, err := utils.NewTokenIssuer(cfg.Auth.JWTSecret, ttl)
			if err != nil {
				return err
			}
			token, err := issuer.CreateToken(subject, utils.RoleAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject (default ADMIN_EMAIL)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default JWT_TOKEN_TTL)")

	return cmd
}
