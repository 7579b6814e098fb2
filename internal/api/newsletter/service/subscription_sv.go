package newsletterService

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	newsletter "Robostaan/internal/api/newsletter"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/sirupsen/logrus"
)

func unsubscribeURL(token string) string {
	base := os.Getenv("NEWSLETTER_UNSUBSCRIBE_URL")
	if base == "" {
		base = "http://localhost:8080/api/v1/newsletter/unsubscribe"
	}
	return base + "?token=" + token
}

func (s *subscriptionDomainImpl) Subscribe(ctx context.Context, email string) (*newsletter.SubscriptionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, newsletter.ErrSubscribe
	}

	existing, err := repoClient.Subscriptions.GetSubscriptionByEmail(ctx, email)
	if err != nil && !errors.Is(err, newsletter.ErrSubscriptionNotFound) {
		return nil, err
	}

	if err == nil {
		// Resubscribing is idempotent: an active subscription is
		// returned as-is, an inactive one is reactivated.
		if !existing.Active {
			if err := repoClient.Subscriptions.Reactivate(ctx, existing.ID); err != nil {
				return nil, err
			}
			existing.Active = true
			s.sendWelcome(requestID, existing)
		}
		result := makeSubscriptionResponse(existing)
		return &result, nil
	}

	subscriptionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate subscription id")
		return nil, newsletter.ErrSubscribe
	}

	token, err := s.utils.NewRandomToken()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate unsubscribe token")
		return nil, newsletter.ErrSubscribe
	}

	subscription := entity.NewsletterSubscription{
		ID:               subscriptionID,
		Email:            email,
		UnsubscribeToken: token,
		Active:           true,
		CreatedAt:        time.Now(),
	}

	if err := repoClient.Subscriptions.CreateSubscription(ctx, subscription); err != nil {
		return nil, err
	}

	s.sendWelcome(requestID, subscription)

	result := makeSubscriptionResponse(subscription)
	return &result, nil
}

func (s *subscriptionDomainImpl) Unsubscribe(ctx context.Context, token string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if token == "" {
		return newsletter.ErrInvalidToken
	}

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	subscription, err := repoClient.Subscriptions.GetSubscriptionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, newsletter.ErrSubscriptionNotFound) {
			return newsletter.ErrInvalidToken
		}
		return err
	}

	if !subscription.Active {
		return nil
	}

	return repoClient.Subscriptions.Deactivate(ctx, subscription.ID)
}

func (s *subscriptionDomainImpl) GetAllSubscriptions(ctx context.Context, limit, offset int) (*newsletter.SubscriptionListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	subscriptions, total, err := repoClient.Subscriptions.GetAllSubscriptions(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	result := &newsletter.SubscriptionListResponse{
		Subscriptions: make([]newsletter.SubscriptionResponse, 0, len(subscriptions)),
		Total:         total,
	}
	for _, subscription := range subscriptions {
		result.Subscriptions = append(result.Subscriptions, makeSubscriptionResponse(subscription))
	}

	return result, nil
}

// sendWelcome is fire-and-forget; a mail failure never blocks the
// subscribe response.
func (s *subscriptionDomainImpl) sendWelcome(requestID string, subscription entity.NewsletterSubscription) {
	go func() {
		if err := s.smtpMailer.SendNewsletterWelcome(subscription.Email, unsubscribeURL(subscription.UnsubscribeToken)); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to send newsletter welcome email")
		}
	}()
}

func makeSubscriptionResponse(subscription entity.NewsletterSubscription) newsletter.SubscriptionResponse {
	return newsletter.SubscriptionResponse{
		ID:        subscription.ID,
		Email:     subscription.Email,
		Active:    subscription.Active,
		CreatedAt: subscription.CreatedAt,
	}
}
