package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			body,
			snippet,
			image_url,
			author,
			featured,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:body,
			:snippet,
			:image_url,
			:author,
			:featured,
			:created_at,
			:updated_at
		)
	`

	blogSelectColumns = `
			b.id,
			b.title,
			b.body,
			b.snippet,
			b.image_url,
			b.author,
			b.featured,
			b.created_at,
			b.updated_at,
			(SELECT COUNT(*) FROM likes l WHERE l.blog_id = b.id) AS like_count,
			(SELECT COUNT(*) FROM comments c WHERE c.blog_id = b.id) AS comment_count
	`

	queryGetBlogByID = `
		SELECT` + blogSelectColumns + `
		FROM blogs b
		WHERE b.id = :id
	`

	queryGetAllBlogs = `
		SELECT` + blogSelectColumns + `
		FROM blogs b
		ORDER BY b.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllBlogs = `
		SELECT COUNT(*)
		FROM blogs
	`

	queryGetBlogsByTag = `
		SELECT` + blogSelectColumns + `
		FROM blogs b
		JOIN blog_tags bt ON bt.blog_id = b.id
		WHERE bt.tag = :tag
		ORDER BY b.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByTag = `
		SELECT COUNT(*)
		FROM blogs b
		JOIN blog_tags bt ON bt.blog_id = b.id
		WHERE bt.tag = :tag
	`

	queryGetFeaturedBlogs = `
		SELECT` + blogSelectColumns + `
		FROM blogs b
		WHERE b.featured = TRUE
		ORDER BY b.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountFeaturedBlogs = `
		SELECT COUNT(*)
		FROM blogs
		WHERE featured = TRUE
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			body = CASE WHEN :body = '' THEN body ELSE :body END,
			snippet = CASE WHEN :snippet = '' THEN snippet ELSE :snippet END,
			image_url = CASE WHEN :image_url = '' THEN image_url ELSE :image_url END,
			updated_at = :updated_at
		WHERE id = :id
	`

	querySetBlogFeatured = `
		UPDATE blogs
		SET featured = :featured, updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryDeleteBlogTags = `
		DELETE FROM blog_tags
		WHERE blog_id = :blog_id
	`

	queryInsertBlogTag = `
		INSERT INTO blog_tags (blog_id, tag)
		VALUES (:blog_id, :tag)
		ON CONFLICT DO NOTHING
	`

	queryGetTagsByBlogIDs = `
		SELECT blog_id, tag
		FROM blog_tags
		WHERE blog_id IN (?)
		ORDER BY tag ASC
	`

	queryListTags = `
		SELECT DISTINCT tag
		FROM blog_tags
		ORDER BY tag ASC
	`
)
