package newsletterRepository

const (
	queryCreateSubscription = `
		INSERT INTO newsletter_subscriptions (
			id,
			email,
			unsubscribe_token,
			active,
			created_at
		) VALUES (
			:id,
			:email,
			:unsubscribe_token,
			:active,
			:created_at
		)
	`

	queryGetSubscriptionByEmail = `
		SELECT id, email, unsubscribe_token, active, created_at, unsubscribed_at
		FROM newsletter_subscriptions
		WHERE email = :email
	`

	queryGetSubscriptionByToken = `
		SELECT id, email, unsubscribe_token, active, created_at, unsubscribed_at
		FROM newsletter_subscriptions
		WHERE unsubscribe_token = :unsubscribe_token
	`

	queryGetAllSubscriptions = `
		SELECT id, email, unsubscribe_token, active, created_at, unsubscribed_at
		FROM newsletter_subscriptions
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllSubscriptions = `
		SELECT COUNT(*)
		FROM newsletter_subscriptions
	`

	queryReactivateSubscription = `
		UPDATE newsletter_subscriptions
		SET active = TRUE, unsubscribed_at = NULL
		WHERE id = :id
	`

	queryDeactivateSubscription = `
		UPDATE newsletter_subscriptions
		SET active = FALSE, unsubscribed_at = :unsubscribed_at
		WHERE id = :id
	`
)
