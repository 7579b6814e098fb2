package authService

import (
	"context"
	"errors"
	"time"

	"Robostaan/internal/api/auth"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *preferenceDomainImpl) GetPreferences(ctx context.Context, userID string) (*auth.PreferenceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	pref, err := repo.Preferences.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrPreferencesNotFound) {
			// First read before any write: fall back to defaults.
			return &auth.PreferenceResponse{
				Theme:              "system",
				EmailNotifications: true,
			}, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get preferences")
		return nil, err
	}

	return makePreferenceResponse(pref), nil
}

func (s *preferenceDomainImpl) UpdatePreferences(ctx context.Context, userID string, req auth.PreferenceRequest) (*auth.PreferenceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	current, err := repo.Preferences.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, auth.ErrPreferencesNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get current preferences")
		return nil, err
	}

	if current.UserID == "" {
		current = entity.UserPreference{
			UserID:             userID,
			Theme:              "system",
			EmailNotifications: true,
		}
	}

	if req.Theme != "" {
		current.Theme = req.Theme
	}
	if req.EmailNotifications != nil {
		current.EmailNotifications = *req.EmailNotifications
	}
	if req.NewsletterOptIn != nil {
		current.NewsletterOptIn = *req.NewsletterOptIn
	}
	current.UpdatedAt = time.Now()

	if err := repo.Preferences.Upsert(ctx, current); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to upsert preferences")
		return nil, err
	}

	return makePreferenceResponse(current), nil
}

func makePreferenceResponse(pref entity.UserPreference) *auth.PreferenceResponse {
	return &auth.PreferenceResponse{
		Theme:              pref.Theme,
		EmailNotifications: pref.EmailNotifications,
		NewsletterOptIn:    pref.NewsletterOptIn,
		UpdatedAt:          pref.UpdatedAt,
	}
}
