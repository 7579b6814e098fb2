package authService

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"Robostaan/internal/api/auth"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) RegisterUser(ctx context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	now := time.Now()

	user := entity.User{
		ID:        userID,
		Email:     req.Email,
		Name:      req.Name,
		Password:  hashed,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	pref := entity.UserPreference{
		UserID:             userID,
		Theme:              "system",
		EmailNotifications: true,
		UpdatedAt:          now,
	}

	if err := repo.Preferences.Upsert(ctx, pref); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create default preferences")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	return nil
}

func (s *userDomainImpl) GetByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get user")
		}
		return entity.User{}, err
	}

	if user.ProfilePhotoURL != "" {
		presignedURL, err := s.s3Client.PresignUrl(user.ProfilePhotoURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Warn("Failed to create presigned URL for profile photo")
		} else {
			user.ProfilePhotoURL = presignedURL
		}
	}

	return user, nil
}

func (s *userDomainImpl) UpdateUser(ctx context.Context, user entity.UserLoginData, req auth.UpdateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	update := entity.User{
		ID:   user.ID,
		Name: req.Name,
		Bio:  req.Bio,
	}

	if err := repo.Users.UpdateUser(ctx, update); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         user.ID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return err
	}

	return nil
}

func (s *userDomainImpl) UpdateRole(ctx context.Context, targetUserID string, role string) error {
	requestID := contextPkg.GetRequestID(ctx)

	newRole := entity.Role(role)
	if !newRole.Valid() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"role":       role,
		}).Warn("Invalid role requested")
		return auth.ErrInvalidRole
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.UpdateRole(ctx, targetUserID, newRole); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         targetUserID,
			"error":      err.Error(),
		}).Error("Failed to update role")
		return err
	}

	return nil
}

func (s *userDomainImpl) DeleteUser(ctx context.Context, actor entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if actor.ID != id && actor.Role != entity.RoleAdmin {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"actor_id":   actor.ID,
			"target_id":  id,
		}).Warn("User cannot delete another user's account")
		return auth.ErrUserNotFound
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.DeleteUser(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return err
	}

	return nil
}

func (s *userDomainImpl) UpdateProfilePhoto(ctx context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid profile photo")
		return nil, auth.ErrInvalidFileType
	}

	uploadedURL, err := s.s3Client.UploadFile(photoFile, "profiles")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile photo")
		return nil, auth.ErrFailedToUploadFile
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.Users.UpdateProfilePhoto(ctx, userID, uploadedURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         userID,
			"error":      err.Error(),
		}).Error("Failed to update profile photo")
		return nil, err
	}

	return &auth.ProfilePhotoResponse{
		ID:              userID,
		ProfilePhotoURL: uploadedURL,
	}, nil
}
