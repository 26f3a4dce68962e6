package config

import "time"

const defaultJWTSecret = "your-secret-key-change-this-in-production"

type JWTSettings struct {
	Secret          string `yaml:"secret"`
	ExpirationHours int    `yaml:"expiration_hours"`
}

func (j JWTSettings) Key() []byte {
	return []byte(j.Secret)
}

func (j JWTSettings) Expiration() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

func (j JWTSettings) UsesDefaultSecret() bool {
	return j.Secret == defaultJWTSecret
}
