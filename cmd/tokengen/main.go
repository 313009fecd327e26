// Package main mints bearer tokens for a local riskdesk server. Tokens are
// signed with AUTH_JWT_SECRET from the environment or .env, the same secret
// the server verifies with; production tokens come from the hosted provider.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"riskdesk/internal/platform/authctx"
	"riskdesk/internal/platform/config"
	"riskdesk/pkg/domain"
)

const defaultTokenTTL = time.Hour

type tokenOutput struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ExpiresAt string `json:"expires_at"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func main() {
	userID := flag.String("user-id", "", "User ID (UUID). Generated if empty.")
	email := flag.String("email", "auditor@riskdesk.local", "Email claim")
	role := flag.String("role", "auditor", "Role claim")
	ttl := flag.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	jsonOutput := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	if err := run(*userID, *email, *role, *ttl, *jsonOutput); err != nil {
		fmt.Fprintln(os.Stderr, "tokengen:", err)
		os.Exit(1)
	}
}

func run(userID, email, role string, ttl time.Duration, jsonOutput bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Auth.Enabled() {
		return errors.New("AUTH_JWT_SECRET is not set; the server accepts requests without a token")
	}

	uid := domain.UserID(uuid.New())
	if userID != "" {
		if uid, err = domain.ParseUserID(userID); err != nil {
			return err
		}
	}

	now := time.Now()
	session := authctx.Session{UserID: uid, Email: email, Role: role, ExpiresAt: now.Add(ttl)}
	token, err := authctx.Sign(authctx.Config{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.JWTIssuer,
		Audience: cfg.Auth.JWTAudience,
	}, session, now)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tokenOutput{
			Token:     token,
			Type:      "Bearer",
			ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
			UserID:    uid.String(),
			Email:     email,
			Role:      role,
		})
	}

	fmt.Println("Bearer token")
	fmt.Println("============")
	fmt.Printf("User ID:    %s\n", uid)
	fmt.Printf("Email:      %s\n", email)
	fmt.Printf("Role:       %s\n", role)
	fmt.Printf("Expires At: %s\n", session.ExpiresAt.UTC().Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/companies")
	return nil
}
