// Command issue-token prints a signed bearer token for local development
// and smoke tests. Production tokens come from the institution's identity
// provider, which signs with the same secret.
//
// Usage:
//
//	issue-token --sub=prof-42
//	issue-token --sub=coord-1 --role=admin
//
// Requires AUTH_JWT_SECRET (and the rest of the server config) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/auth"
	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/pkg/ctxutil"
)

func main() {
	sub := flag.String("sub", "", "subject (caller id) of the token")
	role := flag.String("role", "", "role claim; \""+ctxutil.RoleAdmin+"\" may manage layout models")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	if *sub == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --sub=<id> [--role=admin] [--ttl=8h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).
		GenerateAccessToken(*sub, *role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(lifetime).UTC().Format(time.RFC3339))
}
