package engagementService

import (
	"context"
	"time"

	engagement "Robostaan/internal/api/engagement"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *likeDomainImpl) ToggleLike(ctx context.Context, user entity.UserLoginData, req engagement.ToggleLikeRequest) (*engagement.ToggleLikeResponse, error) {
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
		return nil, engagement.ErrToggleLike
	}

	removed, err := repoClient.Likes.DeleteLike(ctx, user.ID, target, targetID)
	if err != nil {
		return nil, err
	}

	liked := false
	if !removed {
		likeID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate like id")
			return nil, engagement.ErrToggleLike
		}

		like := entity.Like{
			ID:        likeID,
			UserID:    user.ID,
			BlogID:    req.BlogID,
			CourseID:  req.CourseID,
			CreatedAt: time.Now(),
		}

		if err := repoClient.Likes.CreateLike(ctx, like); err != nil {
			return nil, err
		}
		liked = true
	}

	count, err := repoClient.Likes.CountLikes(ctx, target, targetID)
	if err != nil {
		return nil, err
	}

	kind := "unlike"
	if liked {
		kind = "like"
	}
	s.hub.Broadcast(entity.EngagementEvent{
		Kind:       kind,
		TargetType: target,
		TargetID:   targetID,
		ActorID:    user.ID,
		CreatedAt:  time.Now(),
	})

	return &engagement.ToggleLikeResponse{
		Liked:     liked,
		LikeCount: count,
	}, nil
}

func (s *likeDomainImpl) GetLikeStatus(ctx context.Context, user entity.UserLoginData, blogID, courseID string) (*engagement.LikeStatusResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	target, targetID, err := resolveTarget(blogID, courseID)
	if err != nil {
		return nil, err
	}

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	liked, err := repoClient.Likes.HasLiked(ctx, user.ID, target, targetID)
	if err != nil {
		return nil, err
	}

	count, err := repoClient.Likes.CountLikes(ctx, target, targetID)
	if err != nil {
		return nil, err
	}

	return &engagement.LikeStatusResponse{
		Liked:     liked,
		LikeCount: count,
	}, nil
}
