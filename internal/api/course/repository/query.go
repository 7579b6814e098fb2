package courseRepository

const (
	queryCreateCourse = `
		INSERT INTO courses (
			id,
			title,
			description,
			content,
			image_url,
			duration,
			category,
			video_url,
			author,
			featured,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:description,
			:content,
			:image_url,
			:duration,
			:category,
			:video_url,
			:author,
			:featured,
			:created_at,
			:updated_at
		)
	`

	courseSelectColumns = `
			c.id,
			c.title,
			c.description,
			c.content,
			c.image_url,
			c.duration,
			c.category,
			c.video_url,
			c.author,
			c.featured,
			c.created_at,
			c.updated_at,
			(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollment_count,
			(SELECT COUNT(*) FROM likes l WHERE l.course_id = c.id) AS like_count
	`

	queryGetCourseByID = `
		SELECT` + courseSelectColumns + `
		FROM courses c
		WHERE c.id = :id
	`

	queryGetAllCourses = `
		SELECT` + courseSelectColumns + `
		FROM courses c
		ORDER BY c.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllCourses = `
		SELECT COUNT(*)
		FROM courses
	`

	queryGetCoursesByCategory = `
		SELECT` + courseSelectColumns + `
		FROM courses c
		WHERE c.category = :category
		ORDER BY c.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountCoursesByCategory = `
		SELECT COUNT(*)
		FROM courses
		WHERE category = :category
	`

	queryGetFeaturedCourses = `
		SELECT` + courseSelectColumns + `
		FROM courses c
		WHERE c.featured = TRUE
		ORDER BY c.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountFeaturedCourses = `
		SELECT COUNT(*)
		FROM courses
		WHERE featured = TRUE
	`

	queryUpdateCourse = `
		UPDATE courses
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			description = CASE WHEN :description = '' THEN description ELSE :description END,
			content = CASE WHEN :content = '' THEN content ELSE :content END,
			image_url = CASE WHEN :image_url = '' THEN image_url ELSE :image_url END,
			duration = CASE WHEN :duration = '' THEN duration ELSE :duration END,
			category = CASE WHEN :category = '' THEN category ELSE :category END,
			video_url = CASE WHEN :video_url = '' THEN video_url ELSE :video_url END,
			updated_at = :updated_at
		WHERE id = :id
	`

	querySetCourseFeatured = `
		UPDATE courses
		SET featured = :featured, updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCourse = `
		DELETE FROM courses
		WHERE id = :id
	`

	queryAddMaterial = `
		INSERT INTO course_materials (
			id,
			course_id,
			title,
			url,
			position
		) VALUES (
			:id,
			:course_id,
			:title,
			:url,
			:position
		)
	`

	queryGetMaterialsByCourseID = `
		SELECT id, course_id, title, url, position
		FROM course_materials
		WHERE course_id = :course_id
		ORDER BY position ASC, id ASC
	`

	queryDeleteMaterial = `
		DELETE FROM course_materials
		WHERE id = :id AND course_id = :course_id
	`

	queryCreateEnrollment = `
		INSERT INTO enrollments (
			id,
			user_id,
			course_id,
			progress,
			completed_at,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:course_id,
			:progress,
			:completed_at,
			:created_at,
			:updated_at
		)
	`

	queryGetEnrollment = `
		SELECT id, user_id, course_id, progress, completed_at, created_at, updated_at
		FROM enrollments
		WHERE user_id = :user_id AND course_id = :course_id
	`

	queryGetEnrollmentsByUserID = `
		SELECT id, user_id, course_id, progress, completed_at, created_at, updated_at
		FROM enrollments
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateProgress = `
		UPDATE enrollments
		SET progress = :progress, completed_at = :completed_at, updated_at = :updated_at
		WHERE user_id = :user_id AND course_id = :course_id
	`

	queryDeleteEnrollment = `
		DELETE FROM enrollments
		WHERE user_id = :user_id AND course_id = :course_id
	`
)
