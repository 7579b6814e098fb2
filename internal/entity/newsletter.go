package entity

import (
	"database/sql"
	"time"
)

type NewsletterSubscription struct {
	ID               string       `db:"id"`
	Email            string       `db:"email"`
	UnsubscribeToken string       `db:"unsubscribe_token"`
	Active           bool         `db:"active"`
	CreatedAt        time.Time    `db:"created_at"`
	UnsubscribedAt   sql.NullTime `db:"unsubscribed_at"`
}
