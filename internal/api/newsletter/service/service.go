package newsletterService

import (
	"context"

	newsletter "Robostaan/internal/api/newsletter"
	newsletterRepository "Robostaan/internal/api/newsletter/repository"
	"Robostaan/pkg/smtp"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
)

type NewsletterService interface {
	Subscription() SubscriptionDomain
}

type SubscriptionDomain interface {
	Subscribe(ctx context.Context, email string) (*newsletter.SubscriptionResponse, error)
	Unsubscribe(ctx context.Context, token string) error
	GetAllSubscriptions(ctx context.Context, limit, offset int) (*newsletter.SubscriptionListResponse, error)
}

type newsletterService struct {
	log                  *logrus.Logger
	newsletterRepository newsletterRepository.Repository

	subscriptionDomain SubscriptionDomain
}

func (s *newsletterService) Subscription() SubscriptionDomain {
	return s.subscriptionDomain
}

type subscriptionDomainImpl struct {
	log        *logrus.Logger
	repo       newsletterRepository.Repository
	smtpMailer smtp.ItfSmtp
	utils      utils.IUtils
}

func New(log *logrus.Logger,
	newsletterRepo newsletterRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
) NewsletterService {
	return &newsletterService{
		log:                  log,
		newsletterRepository: newsletterRepo,

		subscriptionDomain: &subscriptionDomainImpl{
			log:        log,
			repo:       newsletterRepo,
			smtpMailer: smtpMailer,
			utils:      utils,
		},
	}
}
