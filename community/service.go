package community

import (
	"context"
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/payments"
	"github.com/Lina4Life/passionart-sub002/utils"

	"gorm.io/gorm"
)

// Notifier informs a post's author about moderation outcomes. Implementations
// must be fire-and-forget: a delivery failure never affects the decision.
type Notifier interface {
	PostDecided(userID, postID uint, approved bool, reason string)
}

// Service is the paid-post moderation workflow: submission gate, verification
// queue, decision engine, voting ledger and comment thread. All multi-row
// mutations run inside one transaction.
type Service struct {
	db         *gorm.DB
	payments   payments.Verifier
	notify     Notifier
	payTimeout time.Duration
}

func NewService(db *gorm.DB, verifier payments.Verifier, notifier Notifier) *Service {
	timeout := 10 * time.Second
	if s := os.Getenv("PAYMENT_VERIFY_TIMEOUT_SEC"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			timeout = time.Duration(v) * time.Second
		}
	}
	return &Service{db: db, payments: verifier, notify: notifier, payTimeout: timeout}
}

type PaymentInfo struct {
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

type SubmitPostInput struct {
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	Images     []string    `json:"images"`
	Tags       []string    `json:"tags"`
	CategoryID *uint       `json:"category_id"`
	Payment    PaymentInfo `json:"payment"`
}

// SubmitPost persists a new post as pending_payment and, when the payment
// collaborator confirms the charge within the timeout, promotes it to
// pending_verification stamping the payment fields. On a declined or
// unreachable payment the created post is returned together with a payment
// error so the member can retry instead of resubmitting.
func (s *Service) SubmitPost(ctx context.Context, authorID uint, in SubmitPostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" {
		return nil, validationErr("title is required")
	}
	if body == "" {
		return nil, validationErr("body is required")
	}
	for _, img := range in.Images {
		u, err := url.Parse(img)
		if err != nil || u.Scheme == "" || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, validationErr("image reference is not a valid URL: " + img)
		}
	}
	if in.Payment.Amount <= 0 {
		return nil, validationErr("payment amount must be greater than zero")
	}
	if strings.TrimSpace(in.Payment.Method) == "" {
		return nil, validationErr("payment method is required")
	}
	if strings.TrimSpace(in.Payment.Reference) == "" {
		return nil, validationErr("payment reference is required")
	}

	var author models.User
	if err := s.db.WithContext(ctx).First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("author account not found")
		}
		return nil, storageErr(err)
	}
	if !strings.EqualFold(author.Status, "active") {
		return nil, authorizationErr()
	}

	if in.CategoryID != nil {
		var cat models.Category
		if err := s.db.WithContext(ctx).First(&cat, *in.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErr("unknown category")
			}
			return nil, storageErr(err)
		}
	}

	post := models.Post{
		UserID:        authorID,
		CategoryID:    in.CategoryID,
		Title:         title,
		Body:          body,
		Images:        in.Images,
		Tags:          in.Tags,
		Status:        models.StatusPendingPayment,
		OrderID:       utils.GenerateOrderID(authorID),
		PaymentAmount: in.Payment.Amount,
		PaymentMethod: in.Payment.Method,
		PaymentRef:    in.Payment.Reference,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, storageErr(err)
	}

	// Bounded call to the payment collaborator. On timeout or decline the
	// post stays pending_payment and is retryable.
	if s.payments == nil {
		return &post, paymentErr("payment verification is unavailable, please retry later")
	}
	payCtx, cancel := context.WithTimeout(ctx, s.payTimeout)
	defer cancel()
	status, err := s.payments.VerifyCharge(payCtx, in.Payment.Reference)
	if err != nil {
		return &post, paymentErr("payment verification did not complete, please retry payment")
	}
	if !status.Verified {
		return &post, paymentErr("payment was declined")
	}

	res := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND status = ?", post.ID, models.StatusPendingPayment).
		Updates(map[string]interface{}{
			"status":           models.StatusPendingVerification,
			"payment_verified": true,
			"payment_amount":   status.Amount,
			"payment_method":   status.Method,
		})
	if res.Error != nil {
		return &post, storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return &post, invalidStateErr("post is no longer awaiting payment")
	}

	if err := s.db.WithContext(ctx).First(&post, post.ID).Error; err != nil {
		return &post, storageErr(err)
	}
	return &post, nil
}

// storageErr logs the low-level persistence failure and returns a generic
// error; handlers map it to a 500 without leaking database details.
func storageErr(err error) error {
	log.Printf("[community] storage error: %v", err)
	return errors.New("storage error: operation was not applied")
}
