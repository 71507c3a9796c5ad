package storage

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/internal/models"
)

var (
	logger = log.With().Str("component", "storage").Logger()
)

func AddRefreshToken(db *gormw.DB, refreshToken *models.RefreshToken) error {
	return db.Create(refreshToken).Error
}

// ListActiveRefreshTokens returns every record whose expiry is strictly in
// the future, with the owning user preloaded. The secret hash cannot be
// looked up by value, so refresh validation compares against each of these.
func ListActiveRefreshTokens(db *gormw.DB, now time.Time) ([]models.RefreshToken, error) {
	var tokens []models.RefreshToken
	err := db.Preload("User").Where("expires_at > ?", now).Find(&tokens).Error
	return tokens, err
}

func CountActiveRefreshTokens(db *gormw.DB, now time.Time) (int64, error) {
	var n int64
	err := db.Model(&models.RefreshToken{}).Where("expires_at > ?", now).Count(&n).Error
	return n, err
}

// Refresh token will exists in database forever if not register a cleaner.
func RegisterRefreshTokensCleaner(scheduler gocron.Scheduler, db *gormw.DB) {
	_, _ = scheduler.NewJob(
		gocron.CronJob(
			// 4am Daily
			"0 4 * * *",
			false,
		),
		gocron.NewTask(
			func() {
				logger.Info().Msg("Cleaning up expired refresh tokens")
				yesterday := time.Now().AddDate(0, 0, -1)
				db.Where("expires_at < ?", yesterday).Delete(&models.RefreshToken{})
			},
		),
	)
}
