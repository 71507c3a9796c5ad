// seedadmin creates the initial admin account if it does not exist yet.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mmotors/api/internal/config"
	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/internal/models"
	"github.com/mmotors/api/internal/storage"
)

// Same work factor registration uses.
const bcryptCost = 12

var (
	configPath = flag.String("c", os.Getenv("CONFIG_PATH"), "Path to configuration file")
	email      = flag.String("email", os.Getenv("ADMIN_EMAIL"), "Admin email")
	password   = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "Admin password")
)

func main() {
	flag.Parse()
	if *configPath == "" {
		log.Fatal().Msg("Config path must be provided via CONFIG_PATH env var or -c flag")
	}
	if *email == "" || *password == "" {
		log.Fatal().Msg("Admin email and password must be provided via flags or ADMIN_EMAIL/ADMIN_PASSWORD env vars")
	}

	cfg := config.LoadConfig(*configPath)

	db, err := gormw.Open(&cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	if _, err := storage.GetUserByEmail(db, *email); err == nil {
		log.Info().Msg("Admin user already exists, skipping seeding")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("Failed to look up admin user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash admin password")
	}

	if err := storage.CreateUser(db, &models.User{
		Email:          *email,
		HashedPassword: string(hashed),
		Role:           models.RoleAdmin,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin user")
	}

	log.Info().Str("email", *email).Msg("Admin user created")
}
