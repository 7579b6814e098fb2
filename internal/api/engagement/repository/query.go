package engagementRepository

const (
	queryCreateComment = `
		INSERT INTO comments (
			id,
			blog_id,
			course_id,
			parent_id,
			author,
			body,
			created_at,
			updated_at
		) VALUES (
			:id,
			:blog_id,
			:course_id,
			:parent_id,
			:author,
			:body,
			:created_at,
			:updated_at
		)
	`

	commentSelectColumns = `
			cm.id,
			cm.blog_id,
			cm.course_id,
			cm.parent_id,
			cm.author,
			u.name AS author_name,
			cm.body,
			cm.created_at,
			cm.updated_at
	`

	queryGetCommentByID = `
		SELECT` + commentSelectColumns + `
		FROM comments cm
		JOIN users u ON u.id = cm.author
		WHERE cm.id = :id
	`

	queryGetTopLevelCommentsByBlogID = `
		SELECT` + commentSelectColumns + `
		FROM comments cm
		JOIN users u ON u.id = cm.author
		WHERE cm.blog_id = :target_id AND cm.parent_id IS NULL
		ORDER BY cm.created_at ASC
		LIMIT :limit OFFSET :offset
	`

	queryGetTopLevelCommentsByCourseID = `
		SELECT` + commentSelectColumns + `
		FROM comments cm
		JOIN users u ON u.id = cm.author
		WHERE cm.course_id = :target_id AND cm.parent_id IS NULL
		ORDER BY cm.created_at ASC
		LIMIT :limit OFFSET :offset
	`

	queryCountTopLevelBlogComments = `
		SELECT COUNT(*)
		FROM comments
		WHERE blog_id = :target_id AND parent_id IS NULL
	`

	queryCountTopLevelCourseComments = `
		SELECT COUNT(*)
		FROM comments
		WHERE course_id = :target_id AND parent_id IS NULL
	`

	queryGetRepliesByParentIDs = `
		SELECT` + commentSelectColumns + `
		FROM comments cm
		JOIN users u ON u.id = cm.author
		WHERE cm.parent_id IN (?)
		ORDER BY cm.created_at ASC
	`

	queryUpdateComment = `
		UPDATE comments
		SET body = :body, updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryCreateLike = `
		INSERT INTO likes (
			id,
			user_id,
			blog_id,
			course_id,
			created_at
		) VALUES (
			:id,
			:user_id,
			:blog_id,
			:course_id,
			:created_at
		)
	`

	queryDeleteBlogLike = `
		DELETE FROM likes
		WHERE user_id = :user_id AND blog_id = :target_id
	`

	queryDeleteCourseLike = `
		DELETE FROM likes
		WHERE user_id = :user_id AND course_id = :target_id
	`

	queryCountBlogLikes = `
		SELECT COUNT(*)
		FROM likes
		WHERE blog_id = :target_id
	`

	queryCountCourseLikes = `
		SELECT COUNT(*)
		FROM likes
		WHERE course_id = :target_id
	`

	queryHasBlogLike = `
		SELECT EXISTS (
			SELECT 1 FROM likes
			WHERE user_id = :user_id AND blog_id = :target_id
		)
	`

	queryHasCourseLike = `
		SELECT EXISTS (
			SELECT 1 FROM likes
			WHERE user_id = :user_id AND course_id = :target_id
		)
	`
)
