// Command tokengen mints HS256 access tokens for the retail API.
//
// It reads the issuer, audience, duration and sign key from the same sources
// as the server (env, flags, JSON file) and prints the signed token to stdout:
//
//	tokengen -token-issuer retail-api -token-sign-key secret \
//	    -sub tester -perm read:items -perm read:orders
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/utils"
	"github.com/MKhiriev/go-retail-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errNoSubject = errors.New("subject is required: pass -sub")

// permissions collects repeated -perm flags. A single flag may also carry a
// comma-separated list.
type permissions []string

func (p *permissions) String() string {
	return strings.Join(*p, ",")
}

func (p *permissions) Set(value string) error {
	for _, scope := range strings.Split(value, ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			*p = append(*p, scope)
		}
	}
	return nil
}

func main() {
	log := logger.NewLogger("retail-api-tokengen")
	if err := logger.SetGlobalLevel("warn"); err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}
}

func run(args []string) error {
	var (
		subject string
		scopes  permissions
		version bool
	)

	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	fs.StringVar(&subject, "sub", "", "Subject the token is issued for")
	fs.Var(&scopes, "perm", "Granted scope, repeatable (e.g. read:items)")
	fs.BoolVar(&version, "version", false, "Print build information and exit")

	cfg, err := config.LoadTokenConfig(fs, args)
	if err != nil {
		return fmt.Errorf("error loading configs: %w", err)
	}

	if version {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return nil
	}

	if subject == "" {
		return errNoSubject
	}

	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:      cfg.Auth.TokenIssuer,
		Audience:    cfg.Auth.TokenAudience,
		Subject:     subject,
		Permissions: scopes,
		Duration:    cfg.Auth.TokenDuration,
		SignKey:     cfg.Auth.TokenSignKey,
	})
	if err != nil {
		return err
	}

	fmt.Println(token.String())
	return nil
}
