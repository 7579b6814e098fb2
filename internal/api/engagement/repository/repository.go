package engagementRepository

import (
	"Robostaan/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Comments: &commentsRepository{q: sqlExecutor, log: r.log},
		Likes:    &likesRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) error
		GetCommentByID(ctx context.Context, id string) (entity.Comment, error)
		GetCommentsByTarget(ctx context.Context, target entity.TargetType, targetID string, limit, offset int) ([]entity.Comment, int, error)
		GetRepliesByParentIDs(ctx context.Context, parentIDs []string) ([]entity.Comment, error)
		UpdateComment(ctx context.Context, id, body string) error
		DeleteComment(ctx context.Context, id string) error
	}

	Likes interface {
		CreateLike(ctx context.Context, like entity.Like) error
		DeleteLike(ctx context.Context, userID string, target entity.TargetType, targetID string) (bool, error)
		CountLikes(ctx context.Context, target entity.TargetType, targetID string) (int, error)
		HasLiked(ctx context.Context, userID string, target entity.TargetType, targetID string) (bool, error)
	}

	Commit   func() error
	Rollback func() error
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type likesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
