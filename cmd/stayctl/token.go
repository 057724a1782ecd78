package main

import (
	"fmt"

	"staybook/cmd/bootstrap"
	"staybook/internal/domain/user"
	"staybook/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// tokenCmd mints a bearer token the way the identity provider does, for
// local testing against a running server.
func tokenCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "token [user-id]",
		Short: "Sign a development bearer token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid.New()
			if len(args) == 1 {
				parsed, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				id = parsed
			}
			r := user.Role(role)
			if !r.IsValid() {
				return fmt.Errorf("invalid role %q", role)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			token, err := bootstrap.NewJWTService(cfg).GenerateToken(id, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user_id=%s role=%s\n%s\n", id, r, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(user.RoleGuest), "guest, owner or admin")
	return cmd
}
