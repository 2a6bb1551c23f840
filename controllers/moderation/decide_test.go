package moderation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/utils"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestController(t *testing.T) (*Controller, *gorm.DB) {
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
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.ModerationDecision{},
		&models.Vote{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewController(community.NewService(db, nil, nil)), db
}

func decideRequestFor(t *testing.T, postID uint, callerID uint, role models.Role, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("POST", fmt.Sprintf("http://example.local/v1/moderation/posts/%d", postID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprintf("%d", postID)})
	ctx := context.WithValue(req.Context(), utils.UserIDKey, callerID)
	ctx = context.WithValue(ctx, utils.UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestDecideHandler_ApprovesPendingPost(t *testing.T) {
	ctl, db := newTestController(t)

	mod := models.User{Name: "mara", Email: "mara@passionart.test", Password: "x", Role: models.RoleModerator, Status: "Active"}
	if err := db.Create(&mod).Error; err != nil {
		t.Fatalf("seed moderator: %v", err)
	}
	post := models.Post{UserID: mod.ID + 1, Title: "Sunset study", Body: "Oil on canvas.", Status: models.StatusPendingVerification}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	rec := httptest.NewRecorder()
	ctl.DecideHandler(rec, decideRequestFor(t, post.ID, mod.ID, mod.Role, `{"action":"approve"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Post
	if err := db.First(&updated, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if updated.Status != models.StatusApproved {
		t.Fatalf("expected approved status, got %q", updated.Status)
	}
	var decisions int64
	db.Model(&models.ModerationDecision{}).Where("post_id = ?", post.ID).Count(&decisions)
	if decisions != 1 {
		t.Fatalf("expected one decision row, got %d", decisions)
	}
}

func TestDecideHandler_BadInput(t *testing.T) {
	ctl, db := newTestController(t)

	mod := models.User{Name: "mara", Email: "mara@passionart.test", Password: "x", Role: models.RoleModerator, Status: "Active"}
	if err := db.Create(&mod).Error; err != nil {
		t.Fatalf("seed moderator: %v", err)
	}
	post := models.Post{UserID: mod.ID + 1, Title: "Sunset study", Body: "Oil on canvas.", Status: models.StatusPendingVerification}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	// unknown action
	rec := httptest.NewRecorder()
	ctl.DecideHandler(rec, decideRequestFor(t, post.ID, mod.ID, mod.Role, `{"action":"escalate"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d", rec.Code)
	}

	// reject without reason
	rec = httptest.NewRecorder()
	ctl.DecideHandler(rec, decideRequestFor(t, post.ID, mod.ID, mod.Role, `{"action":"reject"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reject without reason, got %d", rec.Code)
	}

	// member role is refused even if routing let the request through
	rec = httptest.NewRecorder()
	ctl.DecideHandler(rec, decideRequestFor(t, post.ID, mod.ID, models.RoleMember, `{"action":"approve"}`))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for member, got %d", rec.Code)
	}

	// unknown post
	rec = httptest.NewRecorder()
	ctl.DecideHandler(rec, decideRequestFor(t, post.ID+99, mod.ID, mod.Role, `{"action":"approve"}`))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown post, got %d", rec.Code)
	}
}
