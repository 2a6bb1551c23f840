package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Lina4Life/passionart-sub002/models"

	"gorm.io/gorm"
)

// Service sends member-facing emails and CRM updates. Every method is
// fire-and-forget: delivery runs on its own goroutine and failures are logged,
// never returned to the caller.
type Service struct {
	db   *gorm.DB
	http *http.Client
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:   db,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendEmail posts one transactional email to the mail API. Returns an error
// for logging only; callers never propagate it.
func (s *Service) sendEmail(to, subject, html string) error {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not set")
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "PassionArt <noreply@passionart.art>"
	}
	baseURL := os.Getenv("RESEND_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}

	payload, err := json.Marshal(emailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail API status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}

// PostDecided tells the author their post was approved or rejected.
func (s *Service) PostDecided(userID, postID uint, approved bool, reason string) {
	go func() {
		var user models.User
		if err := s.db.Select("id", "name", "email").First(&user, userID).Error; err != nil {
			log.Printf("[notify] post %d decision: author %d lookup failed: %v", postID, userID, err)
			return
		}

		var subject, html string
		if approved {
			subject = "Your PassionArt post is live"
			html = fmt.Sprintf("<p>Hi %s,</p><p>Your community post has been approved and is now visible to everyone.</p>", user.Name)
		} else {
			subject = "Your PassionArt post was not approved"
			html = fmt.Sprintf("<p>Hi %s,</p><p>Your community post was rejected by a moderator.</p><p>Reason: %s</p><p>You can submit a new post at any time.</p>", user.Name, reason)
		}

		if err := s.sendEmail(user.Email, subject, html); err != nil {
			log.Printf("[notify] post %d decision email to user %d failed: %v", postID, userID, err)
		}
	}()
}

// Welcome greets a freshly registered member and upserts the CRM contact.
func (s *Service) Welcome(user *models.User) {
	email, name := user.Email, user.Name
	go func() {
		html := fmt.Sprintf("<p>Welcome to PassionArt, %s!</p><p>Browse the community, and share your own work once you are ready.</p>", name)
		if err := s.sendEmail(email, "Welcome to PassionArt", html); err != nil {
			log.Printf("[notify] welcome email to %s failed: %v", email, err)
		}
		if err := s.upsertContact(email, name); err != nil {
			log.Printf("[notify] CRM contact upsert for %s failed: %v", email, err)
		}
	}()
}
