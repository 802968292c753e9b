package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"digiwork-hub.com/digiwork-hub/internal/codec"
	model "digiwork-hub.com/digiwork-hub/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTask(creator uint, assignees ...uint) *model.Task {
	return &model.Task{
		Title:       "Quarterly planning session",
		Description: "Collect the goals of every team and merge them into a single plan.",
		Status:      "OPEN",
		Priority:    "LOW",
		Type:        "TASK",
		Due:         time.Now().Add(72 * time.Hour),
		Assignees:   codec.IDList(assignees),
		CreatorID:   creator,
	}
}

func TestTaskRepository_OptimisticLock(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	task := newTask(1, 2, 3)
	require.NoError(t, store.Tasks.Create(ctx, task))
	assert.Equal(t, uint(1), task.Version)

	first, err := store.Tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	second, err := store.Tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)

	first.Status = "IN_PROGRESS"
	require.NoError(t, store.Tasks.Update(ctx, first))
	assert.Equal(t, uint(2), first.Version)

	second.Status = "DONE"
	err = store.Tasks.Update(ctx, second)
	assert.True(t, errors.Is(err, ErrOptimisticLock))

	reloaded, err := store.Tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", reloaded.Status)
	assert.Equal(t, codec.IDList{2, 3}, reloaded.Assignees)
}

func TestTaskRepository_ListAssignedToIsExact(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Tasks.Create(ctx, newTask(5, 11)))
	require.NoError(t, store.Tasks.Create(ctx, newTask(5, 1, 21)))
	require.NoError(t, store.Tasks.Create(ctx, newTask(1, 2)))

	assigned, err := store.Tasks.ListAssignedTo(ctx, 1)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, codec.IDList{1, 21}, assigned[0].Assignees)

	created, err := store.Tasks.ListCreatedBy(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestFindByIDNotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.Tasks.FindByID(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = store.Comments.Delete(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUserRepository_UniqueAndSearch(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	users := []*model.User{
		{Name: "alice_w", Email: "alice@example.com", Password: "x", ImagePath: "images/a.png", Role: "NA"},
		{Name: "Alicia", Email: "alicia@example.com", Password: "x", ImagePath: "images/b.png", Role: "NA"},
		{Name: "bob_the", Email: "bob@example.com", Password: "x", ImagePath: "images/c.png", Role: "NA"},
	}
	for _, u := range users {
		require.NoError(t, store.Users.Create(ctx, u))
	}

	dup := &model.User{Name: "alice_w", Email: "other@example.com", Password: "x", ImagePath: "images/d.png"}
	err := store.Users.Create(ctx, dup)
	assert.True(t, errors.Is(err, ErrDuplicate))

	taken, err := store.Users.EmailTaken(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	found, err := store.Users.Search(ctx, "ALI", users[0].ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alicia", found[0].Name)
}

func TestStoreTransaction_RollsBack(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx *Store) error {
		if err := tx.Tasks.Create(ctx, newTask(1, 2)); err != nil {
			return err
		}
		return boom
	})
	assert.Equal(t, boom, err)

	tasks, err := store.Tasks.ListCreatedBy(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCascadeByTask(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	task := newTask(1, 2)
	require.NoError(t, store.Tasks.Create(ctx, task))

	require.NoError(t, store.Subtasks.Create(ctx, &model.Subtask{TaskID: task.ID, Title: "sub", Due: task.Due, CreatorID: 1}))
	require.NoError(t, store.Checklists.Create(ctx, &model.Checklist{TaskID: task.ID, UserID: 1, Description: "check"}))
	require.NoError(t, store.Comments.Create(ctx, &model.TaskComment{TaskID: task.ID, UserID: 2, Description: "hello there"}))
	require.NoError(t, store.Attachments.Create(ctx, &model.Attachment{TaskID: task.ID, UserID: 2, Path: "attachments/x.pdf", FileName: "x.pdf"}))

	err := store.Transaction(ctx, func(tx *Store) error {
		for _, del := range []func(context.Context, uint) error{
			tx.Subtasks.DeleteByTask, tx.Checklists.DeleteByTask, tx.Comments.DeleteByTask, tx.Attachments.DeleteByTask,
		} {
			if err := del(ctx, task.ID); err != nil {
				return err
			}
		}
		return tx.Tasks.Delete(ctx, task.ID)
	})
	require.NoError(t, err)

	subtasks, _ := store.Subtasks.ListByTask(ctx, task.ID)
	checklists, _ := store.Checklists.ListByTask(ctx, task.ID)
	comments, _ := store.Comments.ListByTask(ctx, task.ID)
	attachments, _ := store.Attachments.ListByTask(ctx, task.ID)
	assert.Empty(t, subtasks)
	assert.Empty(t, checklists)
	assert.Empty(t, comments)
	assert.Empty(t, attachments)
}

func TestMessageListsAndReferencedPaths(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	msg := &model.Message{
		Title: "t", Description: "d", SenderID: 1, ReceiverID: 2,
		AttachmentPaths: codec.PathList{"attachments/a.pdf", "attachments/b.pdf"},
		FileNames:       codec.PathList{"a.pdf", "b.pdf"},
	}
	require.NoError(t, store.Messages.Create(ctx, msg))
	require.NoError(t, store.Replies.Create(ctx, &model.MessageReply{
		MessageID: msg.ID, FromID: 2, Description: "reply",
		AttachmentPaths: codec.PathList{"attachments/c.pdf"}, FileNames: codec.PathList{"c.pdf"},
	}))

	msg.DeletedFromSender = true
	require.NoError(t, store.Messages.UpdateVisibility(ctx, msg))

	sent, err := store.Messages.ListSent(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, sent)

	received, err := store.Messages.ListReceived(ctx, 2)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, codec.PathList{"a.pdf", "b.pdf"}, received[0].FileNames)

	paths, err := store.ReferencedPaths(ctx)
	require.NoError(t, err)
	for _, p := range []string{"attachments/a.pdf", "attachments/b.pdf", "attachments/c.pdf"} {
		assert.True(t, paths.Contains(p), p)
	}
}

func TestListColumnsAreText(t *testing.T) {
	dialector := mysql.New(mysql.Config{})
	listTypes := []reflect.Type{reflect.TypeOf(codec.IDList{}), reflect.TypeOf(codec.PathList{})}

	rows := []any{&model.Task{}, &model.Subtask{}, &model.Checklist{}, &model.TaskComment{}, &model.Message{}, &model.MessageReply{}}
	for _, row := range rows {
		s, err := schema.Parse(row, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, field := range s.Fields {
			if field.FieldType != listTypes[0] && field.FieldType != listTypes[1] {
				continue
			}
			name := s.Name + "." + field.Name
			assert.Equal(t, "text", dialector.DataTypeOf(field), name)
			assert.False(t, field.HasDefaultValue, name)
		}
	}
}

func TestMessageStoresFiveAttachments(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	paths := make(codec.PathList, 5)
	names := make(codec.PathList, 5)
	for i := range paths {
		paths[i] = "attachments/" + uuid.NewString() + ".xlsx"
		names[i] = fmt.Sprintf("quarterly_budget_breakdown_sheet_%d.xlsx", i)
	}

	msg := &model.Message{Title: "t", Description: "d", SenderID: 1, ReceiverID: 2, AttachmentPaths: paths, FileNames: names}
	require.NoError(t, store.Messages.Create(ctx, msg))
	reply := &model.MessageReply{MessageID: msg.ID, FromID: 2, Description: "reply", AttachmentPaths: paths, FileNames: names}
	require.NoError(t, store.Replies.Create(ctx, reply))

	stored, err := store.Messages.FindByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, paths, stored.AttachmentPaths)
	assert.Equal(t, names, stored.FileNames)
	assert.Greater(t, len(codec.JoinStrings(paths)), 191)

	storedReply, err := store.Replies.FindByID(ctx, reply.ID)
	require.NoError(t, err)
	assert.Equal(t, paths, storedReply.AttachmentPaths)
}

func TestUserRepository_UpdateFieldsIgnoresUnchangedRows(t *testing.T) {
	db := setupTestDB(t)
	// MySQL reports zero affected rows when the written values equal the stored ones.
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:unchanged_rows", func(tx *gorm.DB) {
		tx.RowsAffected = 0
	}))
	store := NewStore(db)
	ctx := context.Background()

	user := &model.User{Name: "alice_w", Email: "alice@example.com", Password: "x", ImagePath: "images/a.png", Role: "NA", NotificationToken: "tok"}
	require.NoError(t, store.Users.Create(ctx, user))

	require.NoError(t, store.Users.UpdateFields(ctx, user.ID, map[string]any{"notification_token": "tok"}))
	require.NoError(t, store.Users.UpdateFields(ctx, user.ID, map[string]any{"role": "Designer"}))

	stored, err := store.Users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Designer", stored.Role)

	err = store.Users.UpdateFields(ctx, 404, map[string]any{"role": "Designer"})
	assert.True(t, errors.Is(err, ErrNotFound))
}
