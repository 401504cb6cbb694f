package main

import (
	"fmt"
	"os"
	"time"

	"space-age/internal/auth"
	"space-age/internal/shared/config"

	"github.com/spf13/pflag"
)

// Mints a bearer token for clients of the API when AUTH_ENABLED is set.
func main() {
	var (
		clientID   string
		expiration time.Duration
	)

	pflag.StringVarP(&clientID, "client", "c", "", "client identifier embedded in the token")
	pflag.DurationVarP(&expiration, "expiration", "e", 0, "token lifetime (defaults to JWT_EXPIRATION_HOURS)")
	pflag.Parse()

	if clientID == "" {
		fmt.Fprintln(os.Stderr, "--client is required")
		os.Exit(2)
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}

	if expiration == 0 {
		expiration = config.GlobalConfig.Auth.TokenExpiration
	}

	tokens, err := auth.NewTokenManager(config.GlobalConfig.Auth.JWTSecret, expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create token manager: %v\n", err)
		os.Exit(1)
	}

	token, err := tokens.Generate(clientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
