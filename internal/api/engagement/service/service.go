package engagementService

import (
	"context"

	engagement "Robostaan/internal/api/engagement"
	engagementRepository "Robostaan/internal/api/engagement/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/utils"
	websocket "Robostaan/pkg/websocket"

	"github.com/sirupsen/logrus"
)

type EngagementService interface {
	Comment() CommentDomain
	Like() LikeDomain
}

type CommentDomain interface {
	CreateComment(ctx context.Context, user entity.UserLoginData, req engagement.CreateCommentRequest) (*engagement.CommentResponse, error)
	GetCommentsByTarget(ctx context.Context, target entity.TargetType, targetID string, limit, offset int) (*engagement.CommentListResponse, error)
	UpdateComment(ctx context.Context, actor entity.UserLoginData, id string, req engagement.UpdateCommentRequest) error
	DeleteComment(ctx context.Context, actor entity.UserLoginData, id string) error
}

type LikeDomain interface {
	ToggleLike(ctx context.Context, user entity.UserLoginData, req engagement.ToggleLikeRequest) (*engagement.ToggleLikeResponse, error)
	GetLikeStatus(ctx context.Context, user entity.UserLoginData, blogID, courseID string) (*engagement.LikeStatusResponse, error)
}

type engagementService struct {
	log                  *logrus.Logger
	engagementRepository engagementRepository.Repository

	commentDomain CommentDomain
	likeDomain    LikeDomain
}

func (s *engagementService) Comment() CommentDomain {
	return s.commentDomain
}

func (s *engagementService) Like() LikeDomain {
	return s.likeDomain
}

type commentDomainImpl struct {
	log   *logrus.Logger
	repo  engagementRepository.Repository
	hub   websocket.IHub
	utils utils.IUtils
}

type likeDomainImpl struct {
	log   *logrus.Logger
	repo  engagementRepository.Repository
	hub   websocket.IHub
	utils utils.IUtils
}

func New(log *logrus.Logger,
	engagementRepo engagementRepository.Repository,
	hub websocket.IHub,
	utils utils.IUtils,
) EngagementService {
	return &engagementService{
		log:                  log,
		engagementRepository: engagementRepo,

		commentDomain: &commentDomainImpl{
			log:   log,
			repo:  engagementRepo,
			hub:   hub,
			utils: utils,
		},
		likeDomain: &likeDomainImpl{
			log:   log,
			repo:  engagementRepo,
			hub:   hub,
			utils: utils,
		},
	}
}

// resolveTarget enforces the one-target rule shared by comments and likes.
func resolveTarget(blogID, courseID string) (entity.TargetType, string, error) {
	switch {
	case blogID != "" && courseID == "":
		return entity.TargetBlog, blogID, nil
	case blogID == "" && courseID != "":
		return entity.TargetCourse, courseID, nil
	default:
		return "", "", engagement.ErrTargetNotSpecified
	}
}
