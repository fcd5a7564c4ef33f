package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES", "UPLOAD_DRIVER", "UPLOAD_DIR", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "employer-hub", cfg.JWTIssuer)
	assert.Equal(t, 7*24*60, cfg.JWTTTLMinutes, "tokens default to a 7 day expiry")
	assert.Equal(t, "local", cfg.UploadDriver)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 5, cfg.MaxUploadMB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("JWT_TTL_MINUTES", "60")
	t.Setenv("UPLOAD_DRIVER", "s3")
	t.Setenv("S3_BUCKET", "logos")

	cfg := Load()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, "s3", cfg.UploadDriver)
	assert.Equal(t, "logos", cfg.S3Bucket)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")
	cfg := Load()
	assert.Equal(t, 7*24*60, cfg.JWTTTLMinutes)
}
