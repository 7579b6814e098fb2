package blogService

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	blogs "Robostaan/internal/api/blog"
	blogRepository "Robostaan/internal/api/blog/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]entity.Blog
	tags  map[string][]string // blog id -> tags
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		blogs: make(map[string]entity.Blog),
		tags:  make(map[string][]string),
	}
}

func (f *fakeBlogRepo) NewClient(tx bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    &fakeBlogs{repo: f},
		Tags:     &fakeTags{repo: f},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeBlogs struct {
	repo *fakeBlogRepo
}

func (f *fakeBlogs) CreateBlog(_ context.Context, blog entity.Blog) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	f.repo.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogs) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	blog, ok := f.repo.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func (f *fakeBlogs) GetAllBlogs(_ context.Context, limit, offset int) ([]entity.Blog, int, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	var all []entity.Blog
	for _, blog := range f.repo.blogs {
		all = append(all, blog)
	}
	return all, len(all), nil
}

func (f *fakeBlogs) GetBlogsByTag(_ context.Context, tag string, limit, offset int) ([]entity.Blog, int, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	var matched []entity.Blog
	for id, blogTags := range f.repo.tags {
		for _, t := range blogTags {
			if t == tag {
				matched = append(matched, f.repo.blogs[id])
				break
			}
		}
	}
	return matched, len(matched), nil
}

func (f *fakeBlogs) GetFeaturedBlogs(_ context.Context, limit, offset int) ([]entity.Blog, int, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	var featured []entity.Blog
	for _, blog := range f.repo.blogs {
		if blog.Featured {
			featured = append(featured, blog)
		}
	}
	return featured, len(featured), nil
}

func (f *fakeBlogs) UpdateBlog(_ context.Context, blog entity.Blog) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	if _, ok := f.repo.blogs[blog.ID]; !ok {
		return blogs.ErrBlogNotFound
	}
	f.repo.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogs) SetFeatured(_ context.Context, id string, featured bool) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	blog, ok := f.repo.blogs[id]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	blog.Featured = featured
	f.repo.blogs[id] = blog
	return nil
}

func (f *fakeBlogs) DeleteBlog(_ context.Context, id string) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	if _, ok := f.repo.blogs[id]; !ok {
		return blogs.ErrBlogNotFound
	}
	delete(f.repo.blogs, id)
	return nil
}

type fakeTags struct {
	repo *fakeBlogRepo
}

func (f *fakeTags) ReplaceTags(_ context.Context, blogID string, tags []string) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	f.repo.tags[blogID] = tags
	return nil
}

func (f *fakeTags) GetTagsByBlogIDs(_ context.Context, blogIDs []string) (map[string][]string, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	result := make(map[string][]string)
	for _, id := range blogIDs {
		if tags, ok := f.repo.tags[id]; ok {
			result[id] = tags
		}
	}
	return result, nil
}

func (f *fakeTags) ListTags(_ context.Context) ([]string, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	seen := make(map[string]bool)
	var all []string
	for _, tags := range f.repo.tags {
		for _, tag := range tags {
			if !seen[tag] {
				seen[tag] = true
				all = append(all, tag)
			}
		}
	}
	return all, nil
}

type failingGemini struct{}

func (f *failingGemini) GenerateSnippet(context.Context, string) (string, error) {
	return "", errors.New("gemini unavailable")
}

type cannedGemini struct {
	snippet string
}

func (f *cannedGemini) GenerateSnippet(context.Context, string) (string, error) {
	return f.snippet, nil
}

type fakeRedis struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: make(map[string]int64)}
}

func (f *fakeRedis) SetOTP(context.Context, string, string, time.Duration) error { return nil }
func (f *fakeRedis) GetOTP(context.Context, string) (string, error)              { return "", nil }
func (f *fakeRedis) DeleteOTP(context.Context, string) error                     { return nil }

func (f *fakeRedis) IncrementViewCount(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeRedis) GetViewCount(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[key], nil
}

func instructorActor(id string) entity.UserLoginData {
	return entity.UserLoginData{ID: id, Role: entity.RoleInstructor}
}

func TestCreateBlogNormalizesTagsAndAppearsInList(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := New(logrus.New(), repo, &cannedGemini{snippet: "a short summary"}, newFakeRedis(), nil, utils.New())

	created, err := svc.Blog().CreateBlog(context.Background(), instructorActor("author-1"), blogs.CreateBlogRequest{
		Title: "Building a line follower",
		Body:  "The full walkthrough.",
		Tags:  []string{" Arduino ", "arduino", "Sensors"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"arduino", "sensors"}, created.Tags)
	assert.Equal(t, "a short summary", created.Snippet)

	list, err := svc.Blog().GetAllBlogs(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Blogs[0].ID)
	assert.Equal(t, []string{"arduino", "sensors"}, list.Blogs[0].Tags)
	assert.Empty(t, list.Blogs[0].Body)
}

func TestCreateBlogFallsBackToTruncatedSnippet(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := New(logrus.New(), repo, &failingGemini{}, newFakeRedis(), nil, utils.New())

	body := strings.Repeat("robot arms and inverse kinematics ", 20)
	created, err := svc.Blog().CreateBlog(context.Background(), instructorActor("author-1"), blogs.CreateBlogRequest{
		Title: "Kinematics primer",
		Body:  body,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Snippet)
	assert.True(t, strings.HasSuffix(created.Snippet, "..."))
	assert.LessOrEqual(t, len(created.Snippet), snippetFallbackLimit+len("..."))
}

func TestGetBlogByIDCountsViews(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := New(logrus.New(), repo, &cannedGemini{snippet: "s"}, newFakeRedis(), nil, utils.New())

	created, err := svc.Blog().CreateBlog(context.Background(), instructorActor("author-1"), blogs.CreateBlogRequest{
		Title: "ROS 2 basics",
		Body:  "Nodes and topics.",
	})
	require.NoError(t, err)

	first, err := svc.Blog().GetBlogByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)

	second, err := svc.Blog().GetBlogByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)

	// Listings surface the cached counter too.
	list, err := svc.Blog().GetAllBlogs(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, list.Blogs, 1)
	assert.Equal(t, int64(2), list.Blogs[0].Views)
}

func TestUpdateBlogEnforcesOwnership(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := New(logrus.New(), repo, &cannedGemini{snippet: "s"}, newFakeRedis(), nil, utils.New())

	created, err := svc.Blog().CreateBlog(context.Background(), instructorActor("author-1"), blogs.CreateBlogRequest{
		Title: "Original",
		Body:  "Original body.",
	})
	require.NoError(t, err)

	update := blogs.UpdateBlogRequest{Title: "Edited", Body: "Edited body.", Snippet: "Edited."}

	err = svc.Blog().UpdateBlog(context.Background(), instructorActor("someone-else"), created.ID, update)
	assert.ErrorIs(t, err, blogs.ErrBlogNotOwned)

	admin := entity.UserLoginData{ID: "admin-1", Role: entity.RoleAdmin}
	require.NoError(t, svc.Blog().UpdateBlog(context.Background(), admin, created.ID, update))

	got, err := svc.Blog().GetBlogByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)
}

func TestSetFeaturedShowsUpInFeaturedList(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := New(logrus.New(), repo, &cannedGemini{snippet: "s"}, newFakeRedis(), nil, utils.New())

	created, err := svc.Blog().CreateBlog(context.Background(), instructorActor("author-1"), blogs.CreateBlogRequest{
		Title: "Pick of the week",
		Body:  "Body.",
	})
	require.NoError(t, err)

	featured, err := svc.Blog().GetFeaturedBlogs(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, featured.Total)

	require.NoError(t, svc.Blog().SetFeatured(context.Background(), created.ID, true))

	featured, err = svc.Blog().GetFeaturedBlogs(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, featured.Total)
	assert.Equal(t, created.ID, featured.Blogs[0].ID)
}

func TestDeleteBlogEnforcesOwnership(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := New(logrus.New(), repo, &cannedGemini{snippet: "s"}, newFakeRedis(), nil, utils.New())

	created, err := svc.Blog().CreateBlog(context.Background(), instructorActor("author-1"), blogs.CreateBlogRequest{
		Title: "Short lived",
		Body:  "Body.",
	})
	require.NoError(t, err)

	err = svc.Blog().DeleteBlog(context.Background(), instructorActor("someone-else"), created.ID)
	assert.ErrorIs(t, err, blogs.ErrBlogNotOwned)

	require.NoError(t, svc.Blog().DeleteBlog(context.Background(), instructorActor("author-1"), created.ID))

	_, err = svc.Blog().GetBlogByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}
