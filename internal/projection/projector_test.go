package projection

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digiwork-hub.com/digiwork-hub/internal/codec"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
)

type fakeUsers map[uint]*model.User

func (f fakeUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.WithStack(repository.ErrNotFound)
}

// brokenUsers knows user 1 and fails every other lookup.
type brokenUsers struct {
	calls int
}

func (b *brokenUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	b.calls++
	if id == 1 {
		return known[1], nil
	}
	return nil, errors.New("connection refused")
}

var known = fakeUsers{
	1: {ID: 1, Name: "creator", ImagePath: "images/1.png", Email: "creator@example.com", Role: "Lead"},
	2: {ID: 2, Name: "assignee", ImagePath: "images/2.png"},
}

func unknown(id uint) dto.UserSummary {
	return dto.UserSummary{ID: id, Name: "UnknownUser", Image: "images/deleted_user.png"}
}

func TestTaskProjectionUsesSentinelForDeletedUsers(t *testing.T) {
	p := NewProjector(known)
	due := time.Date(2030, time.January, 2, 15, 4, 0, 0, time.UTC)

	resp, err := p.Task(context.Background(), &model.Task{
		ID: 7, Title: "title", Due: due, CreatorID: 9, Assignees: codec.IDList{2, 8},
	})
	require.NoError(t, err)

	assert.Equal(t, "02/01/2030 03:04 PM", resp.Due)
	assert.Equal(t, unknown(9), resp.Creator)
	assert.Equal(t, []dto.UserSummary{
		{ID: 2, Name: "assignee", Image: "images/2.png"},
		unknown(8),
	}, resp.Assignees)
}

func TestCommentProjection(t *testing.T) {
	p := NewProjector(known)

	resp, err := p.Comment(context.Background(), &model.TaskComment{
		ID: 3, TaskID: 7, UserID: 5, Description: "hello",
		MentionIDs: codec.IDList{1, 6},
		LikeIDs:    codec.IDList{2},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"creator", "UnknownUser"}, resp.MentionNames)
	assert.Equal(t, unknown(5), resp.User)
	assert.Equal(t, []uint{2}, resp.LikeIDs)
	assert.Equal(t, []uint{}, resp.ReplyIDs)
}

func TestMessageSummaryShowsCounterpart(t *testing.T) {
	p := NewProjector(known)
	m := &model.Message{ID: 4, SenderID: 1, ReceiverID: 2, Title: "hello"}

	fromSender, err := p.MessageSummary(context.Background(), m, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), fromSender.Other.ID)
	fromReceiver, err := p.MessageSummary(context.Background(), m, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), fromReceiver.Other.ID)

	detail, err := p.MessageDetail(context.Background(), m, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, detail.AttachmentPaths)
	assert.Empty(t, detail.Replies)
}

func TestProfileSentinel(t *testing.T) {
	p := NewProjector(known)

	profile, err := p.Profile(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, dto.UserProfile{
		ID: 10, Name: "UnknownUser", Email: "UnknownEmail", Image: "images/deleted_user.png", Role: "NA",
	}, profile)

	profile, err = p.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lead", profile.Role)
}

func TestLookupFailuresSurface(t *testing.T) {
	users := &brokenUsers{}
	p := NewProjector(users)

	_, err := p.Task(context.Background(), &model.Task{ID: 7, CreatorID: 1, Assignees: codec.IDList{3, 4}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.False(t, errors.Is(err, repository.ErrNotFound))

	_, err = p.Profile(context.Background(), 3)
	assert.ErrorContains(t, err, "connection refused")

	_, err = p.TaskDetail(context.Background(), TaskGraph{
		Task:     &model.Task{ID: 7, CreatorID: 1},
		Comments: []model.TaskComment{{ID: 1, UserID: 1, MentionIDs: codec.IDList{5}}},
	})
	assert.ErrorContains(t, err, "load user 5")
}

func TestRepeatedUsersAreLookedUpOnce(t *testing.T) {
	users := &brokenUsers{}
	p := NewProjector(users)

	resp, err := p.Tasks(context.Background(), []model.Task{
		{ID: 1, CreatorID: 1, Assignees: codec.IDList{1}},
		{ID: 2, CreatorID: 1},
	})
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, 1, users.calls)
}
