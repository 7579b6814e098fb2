package newsletterRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	newsletter "Robostaan/internal/api/newsletter"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *subscriptionsRepository) CreateSubscription(ctx context.Context, subscription entity.NewsletterSubscription) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateSubscription, map[string]interface{}{
		"id":                subscription.ID,
		"email":             subscription.Email,
		"unsubscribe_token": subscription.UnsubscribeToken,
		"active":            subscription.Active,
		"created_at":        subscription.CreatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSubscription named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSubscription execution err")
		return err
	}

	return nil
}

func (r *subscriptionsRepository) GetSubscriptionByEmail(ctx context.Context, email string) (entity.NewsletterSubscription, error) {
	return r.getSubscription(ctx, queryGetSubscriptionByEmail, map[string]interface{}{
		"email": email,
	})
}

func (r *subscriptionsRepository) GetSubscriptionByToken(ctx context.Context, token string) (entity.NewsletterSubscription, error) {
	return r.getSubscription(ctx, queryGetSubscriptionByToken, map[string]interface{}{
		"unsubscribe_token": token,
	})
}

func (r *subscriptionsRepository) getSubscription(ctx context.Context, getQuery string, argsKV map[string]interface{}) (entity.NewsletterSubscription, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var subscription entity.NewsletterSubscription

	query, args, err := sqlx.Named(getQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get subscription named query preparation err")
		return entity.NewsletterSubscription{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&subscription); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.NewsletterSubscription{}, newsletter.ErrSubscriptionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get subscription execution err")
		return entity.NewsletterSubscription{}, err
	}

	return subscription, nil
}

func (r *subscriptionsRepository) GetAllSubscriptions(ctx context.Context, limit, offset int) ([]entity.NewsletterSubscription, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var subscriptions []entity.NewsletterSubscription
	var total int

	cq := r.q.Rebind(queryCountAllSubscriptions)
	if err := r.q.QueryRowxContext(ctx, cq).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count subscriptions execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(queryGetAllSubscriptions, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSubscriptions named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &subscriptions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSubscriptions execution err")
		return nil, 0, err
	}

	return subscriptions, total, nil
}

func (r *subscriptionsRepository) Reactivate(ctx context.Context, id string) error {
	return r.setActive(ctx, queryReactivateSubscription, map[string]interface{}{
		"id": id,
	})
}

func (r *subscriptionsRepository) Deactivate(ctx context.Context, id string) error {
	return r.setActive(ctx, queryDeactivateSubscription, map[string]interface{}{
		"id":              id,
		"unsubscribed_at": time.Now(),
	})
}

func (r *subscriptionsRepository) setActive(ctx context.Context, updateQuery string, argsKV map[string]interface{}) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(updateQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update subscription named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update subscription execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Rows affected err")
		return err
	}

	if rowsAffected == 0 {
		return newsletter.ErrSubscriptionNotFound
	}

	return nil
}
