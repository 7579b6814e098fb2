package authService

import (
	"context"
	"mime/multipart"
	"net/url"

	"Robostaan/internal/api/auth"
	authRepository "Robostaan/internal/api/auth/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/bcrypt"
	"Robostaan/pkg/google"
	"Robostaan/pkg/redis"
	"Robostaan/pkg/s3"
	"Robostaan/pkg/smtp"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
	Preference() PreferenceDomain
}

type UserDomain interface {
	RegisterUser(ctx context.Context, req auth.CreateUserRequest) error
	GetByID(ctx context.Context, id string) (entity.User, error)
	UpdateUser(ctx context.Context, user entity.UserLoginData, req auth.UpdateUserRequest) error
	UpdateRole(ctx context.Context, targetUserID string, role string) error
	DeleteUser(ctx context.Context, actor entity.UserLoginData, id string) error
	UpdateProfilePhoto(ctx context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error)
}

type AuthDomain interface {
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	LoginGoogle() (*url.URL, error)
	UserLoginGoogle(ctx context.Context, req auth.LoginUserGoogle) (auth.LoginUserResponse, error)
	SendEmailOTP(ctx context.Context, email string) error
	VerifyEmailOTP(ctx context.Context, email string, code string) error
}

type PreferenceDomain interface {
	GetPreferences(ctx context.Context, userID string) (*auth.PreferenceResponse, error)
	UpdatePreferences(ctx context.Context, userID string, req auth.PreferenceRequest) (*auth.PreferenceResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository

	userDomain       UserDomain
	authDomain       AuthDomain
	preferenceDomain PreferenceDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) Preference() PreferenceDomain {
	return a.preferenceDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	s3Client    s3.ItfS3
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type authDomainImpl struct {
	log            *logrus.Logger
	repo           authRepository.Repository
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

type preferenceDomainImpl struct {
	log  *logrus.Logger
	repo authRepository.Repository
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	smtpMailer smtp.ItfSmtp,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,

		userDomain: &userDomainImpl{
			log:         log,
			repo:        authRepo,
			s3Client:    s3Client,
			bcryptUtils: bcryptUtils,
			utils:       utils,
		},
		authDomain: &authDomainImpl{
			log:            log,
			repo:           authRepo,
			googleProvider: googleProvider,
			redisServer:    redisServer,
			smtpMailer:     smtpMailer,
			bcryptUtils:    bcryptUtils,
			utils:          utils,
		},
		preferenceDomain: &preferenceDomainImpl{
			log:  log,
			repo: authRepo,
		},
	}
}
