// tokengen mints or decodes tokens offline with the same engine the service
// uses. The secret is read from JWT_SECRET_KEY, or from a .env file in the
// working directory.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"token-srv/pkg/jwt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout, os.Getenv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type decodedClaims struct {
	Subject   string `json:"subject"`
	IssuedAt  string `json:"issued_at"`
	ExpiresAt string `json:"expires_at"`
	Expired   bool   `json:"expired"`
}

func run(args []string, stdout io.Writer, getenv func(string) string) error {
	var (
		subject   string
		hours     int
		algorithm string
		decode    string
	)

	flagSet := pflag.NewFlagSet("tokengen", pflag.ContinueOnError)
	flagSet.SetOutput(stdout)
	flagSet.StringVarP(&subject, "subject", "s", "user", "subject (sub claim) of the new token")
	flagSet.IntVarP(&hours, "hours", "H", 0, "lifetime in hours (0 uses ACCESS_TOKEN_EXPIRE_HOURS or one year)")
	flagSet.StringVar(&algorithm, "algorithm", "", "HMAC algorithm (default JWT_ALGORITHM or HS256)")
	flagSet.StringVarP(&decode, "decode", "d", "", "decode this token instead of minting one; expiry is not enforced")

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	if algorithm == "" {
		algorithm = getenv("JWT_ALGORITHM")
	}
	var defaultTTL time.Duration
	if v := getenv("ACCESS_TOKEN_EXPIRE_HOURS"); v != "" {
		var h int
		if _, err := fmt.Sscanf(v, "%d", &h); err != nil || h <= 0 {
			return fmt.Errorf("ACCESS_TOKEN_EXPIRE_HOURS %q is invalid", v)
		}
		defaultTTL = time.Duration(h) * time.Hour
	}

	mgr, err := jwt.New(jwt.Config{
		SecretKey:  getenv("JWT_SECRET_KEY"),
		Algorithm:  algorithm,
		DefaultTTL: defaultTTL,
	})
	if err != nil {
		return err
	}

	if decode != "" {
		claims, err := mgr.Verify(decode, false)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(decodedClaims{
			Subject:   claims.Subject,
			IssuedAt:  claims.IssuedAt.UTC().Format(time.RFC3339),
			ExpiresAt: claims.ExpiresAt.UTC().Format(time.RFC3339),
			Expired:   !time.Now().Before(claims.ExpiresAt),
		})
	}

	tok, err := mgr.Create(subject, time.Duration(hours)*time.Hour)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, tok)
	return err
}
