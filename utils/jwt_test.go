package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/Lina4Life/passionart-sub002/database"
	"github.com/Lina4Life/passionart-sub002/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func useTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.RevokedToken{}, &models.RefreshToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func TestRevokeJTI_DBFallbackBlacklistsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	useTestDB(t)

	token, err := GenerateAccessToken(7, models.RoleMember)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("token should validate before revocation: %v", err)
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		t.Fatal("token carries no jti")
	}

	if err := RevokeJTI(jti, time.Minute); err != nil {
		t.Fatalf("RevokeJTI: %v", err)
	}
	// revoking the same jti twice must not error
	if err := RevokeJTI(jti, time.Minute); err != nil {
		t.Fatalf("second RevokeJTI: %v", err)
	}

	if _, _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("revoked token still validates")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	useTestDB(t)

	id, err := GenerateRefreshToken(9)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	rt, err := ValidateRefreshToken(id)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if rt.UserID != 9 {
		t.Fatalf("expected user 9, got %d", rt.UserID)
	}

	rt.Revoked = true
	if err := database.DB.Save(rt).Error; err != nil {
		t.Fatalf("revoke refresh token: %v", err)
	}
	if _, err := ValidateRefreshToken(id); err == nil {
		t.Fatal("revoked refresh token still validates")
	}
}
