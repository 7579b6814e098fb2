package newsletterService

import (
	"context"
	"sync"
	"testing"

	newsletter "Robostaan/internal/api/newsletter"
	newsletterRepository "Robostaan/internal/api/newsletter/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNewsletterRepo struct {
	mu            sync.Mutex
	subscriptions map[string]entity.NewsletterSubscription // by id
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subscriptions: make(map[string]entity.NewsletterSubscription)}
}

func (f *fakeNewsletterRepo) NewClient(tx bool) (newsletterRepository.Client, error) {
	return newsletterRepository.Client{
		Subscriptions: &fakeSubscriptions{repo: f},
		Commit:        func() error { return nil },
		Rollback:      func() error { return nil },
	}, nil
}

type fakeSubscriptions struct {
	repo *fakeNewsletterRepo
}

func (f *fakeSubscriptions) CreateSubscription(_ context.Context, subscription entity.NewsletterSubscription) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	f.repo.subscriptions[subscription.ID] = subscription
	return nil
}

func (f *fakeSubscriptions) GetSubscriptionByEmail(_ context.Context, email string) (entity.NewsletterSubscription, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	for _, subscription := range f.repo.subscriptions {
		if subscription.Email == email {
			return subscription, nil
		}
	}
	return entity.NewsletterSubscription{}, newsletter.ErrSubscriptionNotFound
}

func (f *fakeSubscriptions) GetSubscriptionByToken(_ context.Context, token string) (entity.NewsletterSubscription, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	for _, subscription := range f.repo.subscriptions {
		if subscription.UnsubscribeToken == token {
			return subscription, nil
		}
	}
	return entity.NewsletterSubscription{}, newsletter.ErrSubscriptionNotFound
}

func (f *fakeSubscriptions) GetAllSubscriptions(_ context.Context, limit, offset int) ([]entity.NewsletterSubscription, int, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	var all []entity.NewsletterSubscription
	for _, subscription := range f.repo.subscriptions {
		all = append(all, subscription)
	}
	return all, len(all), nil
}

func (f *fakeSubscriptions) Reactivate(_ context.Context, id string) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	subscription, ok := f.repo.subscriptions[id]
	if !ok {
		return newsletter.ErrSubscriptionNotFound
	}
	subscription.Active = true
	f.repo.subscriptions[id] = subscription
	return nil
}

func (f *fakeSubscriptions) Deactivate(_ context.Context, id string) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	subscription, ok := f.repo.subscriptions[id]
	if !ok {
		return newsletter.ErrSubscriptionNotFound
	}
	subscription.Active = false
	f.repo.subscriptions[id] = subscription
	return nil
}

type fakeMailer struct{}

func (f *fakeMailer) SendOTP(string, string) error               { return nil }
func (f *fakeMailer) SendNewsletterWelcome(string, string) error { return nil }

func newNewsletterTestService(repo *fakeNewsletterRepo) NewsletterService {
	return New(logrus.New(), repo, &fakeMailer{}, utils.New())
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := newNewsletterTestService(repo)

	subscription, err := svc.Subscription().Subscribe(context.Background(), "  Ada@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", subscription.Email)
	assert.True(t, subscription.Active)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := newNewsletterTestService(repo)

	first, err := svc.Subscription().Subscribe(context.Background(), "ada@example.com")
	require.NoError(t, err)

	second, err := svc.Subscription().Subscribe(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err := svc.Subscription().GetAllSubscriptions(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestUnsubscribeThenResubscribeReactivates(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := newNewsletterTestService(repo)

	created, err := svc.Subscription().Subscribe(context.Background(), "ada@example.com")
	require.NoError(t, err)

	var token string
	for _, subscription := range repo.subscriptions {
		token = subscription.UnsubscribeToken
	}
	require.NotEmpty(t, token)

	require.NoError(t, svc.Subscription().Unsubscribe(context.Background(), token))

	stored, err := svc.Subscription().Subscribe(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.True(t, stored.Active)
}

func TestUnsubscribeRejectsBadToken(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := newNewsletterTestService(repo)

	assert.ErrorIs(t, svc.Subscription().Unsubscribe(context.Background(), ""), newsletter.ErrInvalidToken)
	assert.ErrorIs(t, svc.Subscription().Unsubscribe(context.Background(), "nope"), newsletter.ErrInvalidToken)
}
