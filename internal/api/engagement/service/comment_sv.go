package engagementService

import (
	"context"
	"time"

	engagement "Robostaan/internal/api/engagement"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *commentDomainImpl) CreateComment(ctx context.Context, user entity.UserLoginData, req engagement.CreateCommentRequest) (*engagement.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	target, targetID, err := resolveTarget(req.BlogID, req.CourseID)
	if err != nil {
		return nil, err
	}

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, engagement.ErrCreateComment
	}

	if req.ParentID != "" {
		parent, err := repoClient.Comments.GetCommentByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.BlogID != req.BlogID || parent.CourseID != req.CourseID {
			return nil, engagement.ErrParentMismatch
		}
		// Threads stay one level deep.
		if parent.ParentID != "" {
			return nil, engagement.ErrReplyToReply
		}
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate comment id")
		return nil, engagement.ErrCreateComment
	}

	now := time.Now()
	comment := entity.Comment{
		ID:         commentID,
		BlogID:     req.BlogID,
		CourseID:   req.CourseID,
		ParentID:   req.ParentID,
		Author:     user.ID,
		AuthorName: user.Username,
		Body:       req.Body,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := repoClient.Comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.hub.Broadcast(entity.EngagementEvent{
		Kind:       "comment",
		TargetType: target,
		TargetID:   targetID,
		ActorID:    user.ID,
		CommentID:  comment.ID,
		CreatedAt:  now,
	})

	result := makeCommentResponse(comment)
	return &result, nil
}

func (s *commentDomainImpl) GetCommentsByTarget(ctx context.Context, target entity.TargetType, targetID string, limit, offset int) (*engagement.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	topLevel, total, err := repoClient.Comments.GetCommentsByTarget(ctx, target, targetID, limit, offset)
	if err != nil {
		return nil, err
	}

	parentIDs := make([]string, 0, len(topLevel))
	for _, comment := range topLevel {
		parentIDs = append(parentIDs, comment.ID)
	}

	replies, err := repoClient.Comments.GetRepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		return nil, err
	}

	threaded := threadComments(topLevel, replies)

	result := &engagement.CommentListResponse{
		Comments: make([]engagement.CommentResponse, 0, len(threaded)),
		Total:    total,
	}
	for _, comment := range threaded {
		result.Comments = append(result.Comments, makeCommentResponse(comment))
	}

	return result, nil
}

func (s *commentDomainImpl) UpdateComment(ctx context.Context, actor entity.UserLoginData, id string, req engagement.UpdateCommentRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	comment, err := repoClient.Comments.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.Author != actor.ID {
		return engagement.ErrCommentNotOwned
	}

	return repoClient.Comments.UpdateComment(ctx, id, req.Body)
}

func (s *commentDomainImpl) DeleteComment(ctx context.Context, actor entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	comment, err := repoClient.Comments.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.Author != actor.ID && actor.Role != entity.RoleAdmin {
		return engagement.ErrCommentNotOwned
	}

	return repoClient.Comments.DeleteComment(ctx, id)
}

// threadComments nests replies under their top-level parents preserving
// chronological order on both levels.
func threadComments(topLevel, replies []entity.Comment) []entity.Comment {
	byID := make(map[string]int, len(topLevel))
	for i, comment := range topLevel {
		byID[comment.ID] = i
	}

	for _, reply := range replies {
		if idx, ok := byID[reply.ParentID]; ok {
			topLevel[idx].Replies = append(topLevel[idx].Replies, reply)
		}
	}

	return topLevel
}

func makeCommentResponse(comment entity.Comment) engagement.CommentResponse {
	replies := make([]engagement.CommentResponse, 0, len(comment.Replies))
	for _, reply := range comment.Replies {
		replies = append(replies, makeCommentResponse(reply))
	}

	return engagement.CommentResponse{
		ID:         comment.ID,
		BlogID:     comment.BlogID,
		CourseID:   comment.CourseID,
		ParentID:   comment.ParentID,
		Author:     comment.Author,
		AuthorName: comment.AuthorName,
		Body:       comment.Body,
		Replies:    replies,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}
}
