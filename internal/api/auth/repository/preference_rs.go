package authRepository

import (
	"context"
	"database/sql"
	"errors"

	"Robostaan/internal/api/auth"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PreferenceDB struct {
	UserID             sql.NullString `db:"user_id"`
	Theme              sql.NullString `db:"theme"`
	EmailNotifications bool           `db:"email_notifications"`
	NewsletterOptIn    bool           `db:"newsletter_opt_in"`
	UpdatedAt          sql.NullTime   `db:"updated_at"`
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (entity.UserPreference, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var pref PreferenceDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetPreferencesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return entity.UserPreference{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&pref); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("GetByUserID no preferences found")
			return entity.UserPreference{}, auth.ErrPreferencesNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return entity.UserPreference{}, err
	}

	return entity.UserPreference{
		UserID:             pref.UserID.String,
		Theme:              pref.Theme.String,
		EmailNotifications: pref.EmailNotifications,
		NewsletterOptIn:    pref.NewsletterOptIn,
		UpdatedAt:          pref.UpdatedAt.Time,
	}, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref entity.UserPreference) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":             pref.UserID,
		"theme":               pref.Theme,
		"email_notifications": pref.EmailNotifications,
		"newsletter_opt_in":   pref.NewsletterOptIn,
		"updated_at":          pref.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertPreferences, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Upsert named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Upsert execution err")
		return err
	}

	return nil
}
