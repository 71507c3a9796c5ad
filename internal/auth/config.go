package auth

import "time"

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
	defaultBcryptCost      = 12
)

type Config struct {
	// PrivateKeyPEM is RSA 256 private key in PEM format.
	PrivateKeyPEM string `yaml:"private_key_pem"`

	// Issuer appears in the iss claim of every signed token.
	Issuer string `yaml:"issuer"`

	// AccessTokenTTL in seconds, 15 minutes if unset.
	AccessTokenTTL int `yaml:"access_token_ttl"`

	// RefreshTokenTTL in seconds, 7 days if unset.
	RefreshTokenTTL int `yaml:"refresh_token_ttl"`

	// BcryptCost for password and refresh-secret hashing, 12 if unset.
	BcryptCost int `yaml:"bcrypt_cost"`
}

func (c *Config) Validate() {
	if c.PrivateKeyPEM == "" {
		logger.Fatal().Msg("auth.Config: PrivateKeyPEM is missing")
	}
	if c.Issuer == "" {
		logger.Fatal().Msg("auth.Config: Issuer is missing")
	}
}

// RefreshTokenTTLSeconds is what the boundary uses for cookie max-age.
func (c *Config) RefreshTokenTTLSeconds() int {
	return int(c.refreshTokenTTL().Seconds())
}

func (c *Config) accessTokenTTL() time.Duration {
	if c.AccessTokenTTL <= 0 {
		return defaultAccessTokenTTL
	}
	return time.Duration(c.AccessTokenTTL) * time.Second
}

func (c *Config) refreshTokenTTL() time.Duration {
	if c.RefreshTokenTTL <= 0 {
		return defaultRefreshTokenTTL
	}
	return time.Duration(c.RefreshTokenTTL) * time.Second
}

func (c *Config) bcryptCost() int {
	if c.BcryptCost <= 0 {
		return defaultBcryptCost
	}
	return c.BcryptCost
}
