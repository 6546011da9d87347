// Command createadmin bootstraps the first operator account.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"propdir/internal/auth"
	"propdir/internal/config"
	"propdir/internal/db"
	"propdir/internal/models"
	gormrepository "propdir/internal/repository/gorm"
)

func main() {
	var (
		cfgPath  = flag.String("config", "config/config.yaml", "path to config file")
		name     = flag.String("name", "Administrator", "display name")
		email    = flag.String("email", "", "login email (required)")
		password = flag.String("password", "", "password, at least 8 characters (required)")
	)
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "usage: createadmin -email admin@example.com -password <min 8 chars> [-name ...]")
		os.Exit(2)
	}

	envOnly := strings.EqualFold(os.Getenv("PD_ENV_ONLY"), "true") || os.Getenv("PD_ENV_ONLY") == "1"
	cfg, err := config.Load(*cfgPath, envOnly)
	if err != nil {
		fail("load config: %v", err)
	}

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		fail("open db: %v", err)
	}
	defer dbConn.Close()

	if err := db.AutoMigrate(dbConn); err != nil {
		fail("migrate: %v", err)
	}

	store := gormrepository.New(dbConn.Gorm)
	ctx := context.Background()

	normalized := strings.ToLower(strings.TrimSpace(*email))
	existing, err := store.GetUserByEmail(ctx, normalized)
	if err != nil {
		fail("lookup user: %v", err)
	}
	if existing != nil {
		fail("user %s already exists", normalized)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fail("hash password: %v", err)
	}
	user := models.User{
		Name:         *name,
		Email:        normalized,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := store.CreateUser(ctx, &user); err != nil {
		fail("create user: %v", err)
	}
	fmt.Printf("admin user created: %s (%s)\n", user.Email, user.ID)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
