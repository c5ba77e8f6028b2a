// Command token mints a bearer token for a chat user, for the bot and
// for poking the API by hand.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/limbo/sketchstreak/pkg/config"
	jwtservice "github.com/limbo/sketchstreak/pkg/jwt_service"
	"github.com/spf13/cobra"
)

var (
	displayName string
	ttl         time.Duration
	secret      string
)

var rootCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint a JWT for the sketch tracker API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if secret == "" {
			secret = config.New().GetString("JWT_SECRET")
		}
		if secret == "" {
			return errors.New("no secret: pass --secret or set JWT_SECRET")
		}
		token, err := jwtservice.New(secret, ttl).GenerateToken(args[0], displayName)
		if err != nil {
			return fmt.Errorf("generating token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&displayName, "name", "n", "", "display name stored in the token")
	rootCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to JWT_SECRET)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
