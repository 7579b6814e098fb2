package blogRepository

import (
	"context"

	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *tagsRepository) ReplaceTags(ctx context.Context, blogID string, tags []string) error {
	requestID := contextPkg.GetRequestID(ctx)

	deleteQuery, deleteArgs, err := sqlx.Named(queryDeleteBlogTags, map[string]interface{}{
		"blog_id": blogID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ReplaceTags delete named query preparation err")
		return err
	}

	deleteQuery = r.q.Rebind(deleteQuery)

	if _, err := r.q.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ReplaceTags delete execution err")
		return err
	}

	for _, tag := range tags {
		insertQuery, insertArgs, err := sqlx.Named(queryInsertBlogTag, map[string]interface{}{
			"blog_id": blogID,
			"tag":     tag,
		})
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ReplaceTags insert named query preparation err")
			return err
		}

		insertQuery = r.q.Rebind(insertQuery)

		if _, err := r.q.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
				"tag":        tag,
			}).Error("ReplaceTags insert execution err")
			return err
		}
	}

	return nil
}

func (r *tagsRepository) GetTagsByBlogIDs(ctx context.Context, blogIDs []string) (map[string][]string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	result := make(map[string][]string)

	if len(blogIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(queryGetTagsByBlogIDs, blogIDs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagsByBlogIDs query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagsByBlogIDs execution err")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var blogID, tag string
		if err := rows.Scan(&blogID, &tag); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetTagsByBlogIDs scan err")
			return nil, err
		}
		result[blogID] = append(result[blogID], tag)
	}

	if err := rows.Err(); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagsByBlogIDs rows err")
		return nil, err
	}

	return result, nil
}

func (r *tagsRepository) ListTags(ctx context.Context) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var tags []string

	query := r.q.Rebind(queryListTags)

	if err := r.q.SelectContext(ctx, &tags, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListTags execution err")
		return nil, err
	}

	return tags, nil
}
