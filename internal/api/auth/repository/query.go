package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			name,
			password,
			role,
			bio,
			profile_photo_url,
			is_verified,
			created_at,
			updated_at
		) VALUES (
			:id,
			:email,
			:name,
			:password,
			:role,
			:bio,
			:profile_photo_url,
			:is_verified,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			email,
			name,
			password,
			role,
			bio,
			profile_photo_url,
			is_verified,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			name,
			password,
			role,
			bio,
			profile_photo_url,
			is_verified,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			bio = CASE WHEN :bio = '' THEN bio ELSE :bio END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateUserRole = `
		UPDATE users
		SET role = :role, updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateUserVerified = `
		UPDATE users
		SET is_verified = :is_verified, updated_at = :updated_at
		WHERE email = :email
	`

	queryUpdateProfilePhoto = `
		UPDATE users
		SET profile_photo_url = :profile_photo_url, updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`

	queryGetPreferencesByUserID = `
		SELECT
			user_id,
			theme,
			email_notifications,
			newsletter_opt_in,
			updated_at
		FROM user_preferences
		WHERE user_id = :user_id
	`

	queryUpsertPreferences = `
		INSERT INTO user_preferences (
			user_id,
			theme,
			email_notifications,
			newsletter_opt_in,
			updated_at
		) VALUES (
			:user_id,
			:theme,
			:email_notifications,
			:newsletter_opt_in,
			:updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			theme = EXCLUDED.theme,
			email_notifications = EXCLUDED.email_notifications,
			newsletter_opt_in = EXCLUDED.newsletter_opt_in,
			updated_at = EXCLUDED.updated_at
	`
)
