// Command issue-token mints an access token for an existing user. Tokens are
// normally issued by the identity service; this is for local development and
// smoke tests.
//
// Usage:
//
//	issue-token -user <uuid> -role GUEST|HOST
//
// Requires the same auth and database configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/keepit-backend/internal/auth"
	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/internal/domain"
)

func main() {
	rawUser := flag.String("user", "", "user id")
	rawRole := flag.String("role", "", "GUEST or HOST")
	flag.Parse()

	userID, err := uuid.Parse(*rawUser)
	if err != nil {
		log.Fatalf("-user: %v", err)
	}
	role := domain.UserRole(strings.ToUpper(*rawRole))
	if !role.IsValid() {
		log.Fatalf("-role: must be GUEST or HOST, got %q", *rawRole)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	exists, err := userrepo.New(pool).Exists(ctx, userID)
	if err != nil {
		log.Fatalf("check user: %v", err)
	}
	if !exists {
		log.Fatalf("user %s not found", userID)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwt.GenerateAccessToken(userID, role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
