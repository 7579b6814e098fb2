package engagementService

import (
	"context"
	"strings"
	"testing"

	engagement "Robostaan/internal/api/engagement"
	engagementRepository "Robostaan/internal/api/engagement/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/utils"
	websocketPkg "Robostaan/pkg/websocket"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngagementState struct {
	comments map[string]entity.Comment
	likes    map[string]entity.Like
}

type fakeEngagementRepo struct {
	state *fakeEngagementState
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{state: &fakeEngagementState{
		comments: make(map[string]entity.Comment),
		likes:    make(map[string]entity.Like),
	}}
}

func (f *fakeEngagementRepo) NewClient(tx bool) (engagementRepository.Client, error) {
	return engagementRepository.Client{
		Comments: &fakeComments{state: f.state},
		Likes:    &fakeLikes{state: f.state},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeComments struct {
	state *fakeEngagementState
}

func (f *fakeComments) CreateComment(_ context.Context, comment entity.Comment) error {
	f.state.comments[comment.ID] = comment
	return nil
}

func (f *fakeComments) GetCommentByID(_ context.Context, id string) (entity.Comment, error) {
	comment, ok := f.state.comments[id]
	if !ok {
		return entity.Comment{}, engagement.ErrCommentNotFound
	}
	return comment, nil
}

func (f *fakeComments) GetCommentsByTarget(_ context.Context, target entity.TargetType, targetID string, limit, offset int) ([]entity.Comment, int, error) {
	var topLevel []entity.Comment
	for _, comment := range f.state.comments {
		if comment.ParentID != "" {
			continue
		}
		if target == entity.TargetBlog && comment.BlogID == targetID {
			topLevel = append(topLevel, comment)
		}
		if target == entity.TargetCourse && comment.CourseID == targetID {
			topLevel = append(topLevel, comment)
		}
	}
	total := len(topLevel)
	if offset > len(topLevel) {
		offset = len(topLevel)
	}
	topLevel = topLevel[offset:]
	if limit < len(topLevel) {
		topLevel = topLevel[:limit]
	}
	return topLevel, total, nil
}

func (f *fakeComments) GetRepliesByParentIDs(_ context.Context, parentIDs []string) ([]entity.Comment, error) {
	var replies []entity.Comment
	for _, comment := range f.state.comments {
		for _, parentID := range parentIDs {
			if comment.ParentID == parentID {
				replies = append(replies, comment)
			}
		}
	}
	return replies, nil
}

func (f *fakeComments) UpdateComment(_ context.Context, id, body string) error {
	comment, ok := f.state.comments[id]
	if !ok {
		return engagement.ErrCommentNotFound
	}
	comment.Body = body
	f.state.comments[id] = comment
	return nil
}

func (f *fakeComments) DeleteComment(_ context.Context, id string) error {
	if _, ok := f.state.comments[id]; !ok {
		return engagement.ErrCommentNotFound
	}
	delete(f.state.comments, id)
	return nil
}

type fakeLikes struct {
	state *fakeEngagementState
}

func likeKey(userID string, target entity.TargetType, targetID string) string {
	return userID + "/" + string(target) + "/" + targetID
}

func (f *fakeLikes) CreateLike(_ context.Context, like entity.Like) error {
	target, targetID := entity.TargetBlog, like.BlogID
	if like.CourseID != "" {
		target, targetID = entity.TargetCourse, like.CourseID
	}
	f.state.likes[likeKey(like.UserID, target, targetID)] = like
	return nil
}

func (f *fakeLikes) DeleteLike(_ context.Context, userID string, target entity.TargetType, targetID string) (bool, error) {
	key := likeKey(userID, target, targetID)
	if _, ok := f.state.likes[key]; !ok {
		return false, nil
	}
	delete(f.state.likes, key)
	return true, nil
}

func (f *fakeLikes) CountLikes(_ context.Context, target entity.TargetType, targetID string) (int, error) {
	count := 0
	for key := range f.state.likes {
		if strings.HasSuffix(key, "/"+string(target)+"/"+targetID) {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikes) HasLiked(_ context.Context, userID string, target entity.TargetType, targetID string) (bool, error) {
	_, ok := f.state.likes[likeKey(userID, target, targetID)]
	return ok, nil
}

func newEngagementTestService(repo *fakeEngagementRepo, hub websocketPkg.IHub) EngagementService {
	return New(logrus.New(), repo, hub, utils.New())
}

func TestCreateCommentRejectsAmbiguousTarget(t *testing.T) {
	repo := newFakeEngagementRepo()
	hub := websocketPkg.NewHub(logrus.New())
	defer hub.Close()
	svc := newEngagementTestService(repo, hub)

	user := entity.UserLoginData{ID: "user-1", Username: "ada", Role: entity.RoleUser}

	_, err := svc.Comment().CreateComment(context.Background(), user, engagement.CreateCommentRequest{
		Body: "no target",
	})
	assert.ErrorIs(t, err, engagement.ErrTargetNotSpecified)

	_, err = svc.Comment().CreateComment(context.Background(), user, engagement.CreateCommentRequest{
		BlogID:   "blog-1",
		CourseID: "course-1",
		Body:     "two targets",
	})
	assert.ErrorIs(t, err, engagement.ErrTargetNotSpecified)
}

func TestCreateCommentThreadsOneLevelDeep(t *testing.T) {
	repo := newFakeEngagementRepo()
	hub := websocketPkg.NewHub(logrus.New())
	defer hub.Close()
	svc := newEngagementTestService(repo, hub)

	user := entity.UserLoginData{ID: "user-1", Username: "ada", Role: entity.RoleUser}

	top, err := svc.Comment().CreateComment(context.Background(), user, engagement.CreateCommentRequest{
		BlogID: "blog-1",
		Body:   "top level",
	})
	require.NoError(t, err)

	reply, err := svc.Comment().CreateComment(context.Background(), user, engagement.CreateCommentRequest{
		BlogID:   "blog-1",
		ParentID: top.ID,
		Body:     "a reply",
	})
	require.NoError(t, err)

	_, err = svc.Comment().CreateComment(context.Background(), user, engagement.CreateCommentRequest{
		BlogID:   "blog-1",
		ParentID: reply.ID,
		Body:     "reply to a reply",
	})
	assert.ErrorIs(t, err, engagement.ErrReplyToReply)

	_, err = svc.Comment().CreateComment(context.Background(), user, engagement.CreateCommentRequest{
		CourseID: "course-1",
		ParentID: top.ID,
		Body:     "wrong target",
	})
	assert.ErrorIs(t, err, engagement.ErrParentMismatch)

	list, err := svc.Comment().GetCommentsByTarget(context.Background(), entity.TargetBlog, "blog-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Comments, 1)
	require.Len(t, list.Comments[0].Replies, 1)
	assert.Equal(t, "a reply", list.Comments[0].Replies[0].Body)
}

func TestDeleteCommentAuthorOrAdmin(t *testing.T) {
	repo := newFakeEngagementRepo()
	hub := websocketPkg.NewHub(logrus.New())
	defer hub.Close()
	svc := newEngagementTestService(repo, hub)

	author := entity.UserLoginData{ID: "user-1", Username: "ada", Role: entity.RoleUser}
	comment, err := svc.Comment().CreateComment(context.Background(), author, engagement.CreateCommentRequest{
		BlogID: "blog-1",
		Body:   "mine",
	})
	require.NoError(t, err)

	stranger := entity.UserLoginData{ID: "user-2", Role: entity.RoleUser}
	assert.ErrorIs(t, svc.Comment().DeleteComment(context.Background(), stranger, comment.ID), engagement.ErrCommentNotOwned)

	admin := entity.UserLoginData{ID: "admin-1", Role: entity.RoleAdmin}
	assert.NoError(t, svc.Comment().DeleteComment(context.Background(), admin, comment.ID))
}

func TestToggleLikeIsInvolutive(t *testing.T) {
	repo := newFakeEngagementRepo()
	hub := websocketPkg.NewHub(logrus.New())
	defer hub.Close()
	svc := newEngagementTestService(repo, hub)

	user := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}
	req := engagement.ToggleLikeRequest{BlogID: "blog-1"}

	first, err := svc.Like().ToggleLike(context.Background(), user, req)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.LikeCount)

	second, err := svc.Like().ToggleLike(context.Background(), user, req)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.LikeCount)
}

func TestGetLikeStatusReflectsToggle(t *testing.T) {
	repo := newFakeEngagementRepo()
	hub := websocketPkg.NewHub(logrus.New())
	defer hub.Close()
	svc := newEngagementTestService(repo, hub)

	user := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}
	other := entity.UserLoginData{ID: "user-2", Role: entity.RoleUser}

	_, err := svc.Like().GetLikeStatus(context.Background(), user, "", "")
	assert.ErrorIs(t, err, engagement.ErrTargetNotSpecified)

	status, err := svc.Like().GetLikeStatus(context.Background(), user, "blog-1", "")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, 0, status.LikeCount)

	_, err = svc.Like().ToggleLike(context.Background(), user, engagement.ToggleLikeRequest{BlogID: "blog-1"})
	require.NoError(t, err)

	status, err = svc.Like().GetLikeStatus(context.Background(), user, "blog-1", "")
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, 1, status.LikeCount)

	status, err = svc.Like().GetLikeStatus(context.Background(), other, "blog-1", "")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, 1, status.LikeCount)
}

func TestEngagementEventsBroadcast(t *testing.T) {
	repo := newFakeEngagementRepo()
	hub := websocketPkg.NewHub(logrus.New())
	defer hub.Close()
	svc := newEngagementTestService(repo, hub)

	_, events := hub.Subscribe()

	user := entity.UserLoginData{ID: "user-1", Username: "ada", Role: entity.RoleUser}
	comment, err := svc.Comment().CreateComment(context.Background(), user, engagement.CreateCommentRequest{
		BlogID: "blog-1",
		Body:   "hello",
	})
	require.NoError(t, err)

	event := <-events
	assert.Equal(t, "comment", event.Kind)
	assert.Equal(t, entity.TargetBlog, event.TargetType)
	assert.Equal(t, comment.ID, event.CommentID)

	_, err = svc.Like().ToggleLike(context.Background(), user, engagement.ToggleLikeRequest{CourseID: "course-1"})
	require.NoError(t, err)

	event = <-events
	assert.Equal(t, "like", event.Kind)
	assert.Equal(t, entity.TargetCourse, event.TargetType)
}
