package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	jwttoken "github.com/be1500616/zergoqrf/internal/jwt_token"
	"github.com/be1500616/zergoqrf/internal/platform/config"
	s "github.com/be1500616/zergoqrf/pkg/string"
)

// tokenAudience matches the audience the identity provider stamps on user tokens.
const tokenAudience = "authenticated"

type mintOptions struct {
	userID       string
	email        string
	phone        string
	role         string
	restaurantID string
	permissions  string
	ttl          time.Duration
	anonymous    bool
}

type tokenOutput struct {
	Token     string            `json:"token"`
	Type      string            `json:"type"`
	ExpiresIn string            `json:"expires_in"`
	Usage     map[string]string `json:"usage,omitempty"`
}

// NewTokenCmd groups token subcommands.
func NewTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint and revoke access tokens",
	}
	cmd.AddCommand(newTokenMintCmd())
	cmd.AddCommand(newTokenRevokeCmd())
	return cmd
}

func newTokenMintCmd() *cobra.Command {
	opts := &mintOptions{}
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint an access token signed with the configured JWT secret",
		Long: `Mint an access token shaped like the identity provider's, signed with
SUPABASE_JWT_SECRET. Intended for local development and testing; refuses to
run when APP_ENV=production.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			if cfg.IsProduction() {
				return fmt.Errorf("token minting is disabled in production")
			}
			if opts.userID == "" {
				opts.userID = uuid.NewString()
			} else if _, err := uuid.Parse(opts.userID); err != nil {
				return fmt.Errorf("invalid --user-id: %w", err)
			}

			svc := jwttoken.NewJWTService(cfg.Identity.JWTSecret, "", tokenAudience, opts.ttl)
			token, err := svc.GenerateAccessToken(cmd.Context(), jwttoken.MintRequest{
				UserID:       opts.userID,
				Email:        opts.email,
				Phone:        opts.phone,
				Role:         opts.role,
				RestaurantID: opts.restaurantID,
				Permissions:  s.SplitList(opts.permissions),
				IsAnonymous:  opts.anonymous,
			})
			if err != nil {
				return fmt.Errorf("mint token: %w", err)
			}

			out := tokenOutput{
				Token:     token,
				Type:      "access_token",
				ExpiresIn: opts.ttl.String(),
				Usage: map[string]string{
					"header": "Authorization: Bearer " + token,
				},
			}
			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.userID, "user-id", "", "user ID (UUID); generated if empty")
	f.StringVar(&opts.email, "email", "", "email claim")
	f.StringVar(&opts.phone, "phone", "", "phone claim")
	f.StringVar(&opts.role, "role", models.RoleCustomer, "role stored in app metadata")
	f.StringVar(&opts.restaurantID, "restaurant-id", "", "restaurant the user belongs to")
	f.StringVar(&opts.permissions, "permissions", "", "comma-separated permissions")
	f.DurationVar(&opts.ttl, "ttl", time.Hour, "token time-to-live")
	f.BoolVar(&opts.anonymous, "anonymous", false, "mark the token as anonymous")
	return cmd
}

func newTokenRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <token>",
		Short: "Revoke an access token until it expires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromEnv()
			log := newLogger(cmd, cfg)

			token, err := models.NewToken(args[0])
			if err != nil {
				return err
			}
			st, err := openStores(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer st.close()

			jwtService := jwttoken.NewJWTService(cfg.Identity.JWTSecret, "", tokenAudience, time.Hour)
			if _, err := jwttoken.NewRepository(jwtService, st.revocations, log).BlacklistToken(ctx, token); err != nil {
				return fmt.Errorf("revoke token: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"revoked": true, "token": token.String()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "revoked %s\n", token)
			return nil
		},
	}
}
