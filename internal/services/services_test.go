package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

var now = time.Date(2030, time.June, 10, 9, 0, 0, 0, time.UTC)

const (
	validTitle       = "Quarterly planning session"
	validDescription = "Collect the goals of every team and merge them into a single plan."
	validDue         = "12/06/2030 10:00 AM"
)

type sentNotice struct {
	title      string
	body       string
	recipients []uint
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotice
}

func (f *fakeNotifier) Notify(title, body string, recipients []uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentNotice{title: title, body: body, recipients: recipients})
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeNotifier) last() sentNotice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type fakeMailer struct {
	to   string
	html string
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, _, html string) error {
	m.to, m.html = to, html
	return m.err
}

type fixture struct {
	svc    *Services
	store  *repository.Store
	fs     afero.Fs
	files  *storage.FileStore
	notes  *fakeNotifier
	mailer *fakeMailer
}

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

func setup(t *testing.T) *fixture {
	t.Helper()

	patterns, err := rules.CompilePatterns(
		`^[A-Za-z0-9_]+$`,
		`^[^@\s]+@[^@\s]+\.[a-z]+$`,
		`^(?=.*[0-9])(?=.*[A-Z]).+$`,
	)
	require.NoError(t, err)

	f := &fixture{
		store:  repository.NewStore(setupTestDB(t)),
		fs:     afero.NewMemMapFs(),
		notes:  &fakeNotifier{},
		mailer: &fakeMailer{},
	}
	f.files = storage.NewFileStore(f.fs)
	f.svc = New(Deps{
		Store:    f.store,
		Files:    f.files,
		Notifier: f.notes,
		Mailer:   f.mailer,
		Tokens:   auth.NewTokens("test-secret", time.Hour),
		Hasher:   auth.NewHasher(4),
		Patterns: patterns,
		Location: time.UTC,
		Now:      func() time.Time { return now },
	})
	return f
}

// seedUsers inserts users with ids 1..n named user1..usern.
func (f *fixture) seedUsers(t *testing.T, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, f.store.Users.Create(context.Background(), &model.User{
			Name:              fmt.Sprintf("user%d", i),
			Email:             fmt.Sprintf("user%d@example.com", i),
			Password:          "x",
			ImagePath:         "images/default.png",
			NotificationToken: fmt.Sprintf("tok-%d", i),
		}))
	}
}

func actor(id uint) auth.Actor {
	return auth.Actor{ID: id, Name: fmt.Sprintf("user%d", id)}
}

func upload(name, content string) storage.Upload {
	return storage.Upload{Name: name, Content: bytes.NewReader([]byte(content))}
}

func (f *fixture) createTask(t *testing.T, creator uint, assignees ...uint) *model.Task {
	t.Helper()
	task, err := f.svc.Tasks.Create(context.Background(), actor(creator), dto.TaskRequestData{
		Title:       validTitle,
		Description: validDescription,
		Due:         validDue,
		Assignees:   assignees,
	})
	require.NoError(t, err)
	return task
}

func (f *fixture) storedFiles(t *testing.T, dir string) []string {
	t.Helper()
	paths, err := f.files.ListOlderThan(dir, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return paths
}

func requireKind(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, status, apperrors.StatusCode(err))
	if message != "" {
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, message, appErr.Message)
	}
}

func TestRecipientsDropRepeatsInOrder(t *testing.T) {
	assert.Equal(t, []uint{2, 3, 1}, recipients([]uint{2, 3}, []uint{1, 2}))
	assert.Equal(t, []uint{}, recipients())
}

func TestFailMapsRepositoryErrors(t *testing.T) {
	c := &core{}

	assert.Same(t, apperrors.ErrOptimisticLock, c.fail("op", errors.WithStack(repository.ErrOptimisticLock)))
	assert.Same(t, apperrors.ErrTaskNotFound, c.fail("op", apperrors.ErrTaskNotFound))
	assert.Equal(t, 404, apperrors.StatusCode(c.fail("op", errors.WithStack(repository.ErrNotFound))))

	storageErr := c.fail("op", errors.New("disk I/O error"))
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(storageErr))
	assert.NotContains(t, storageErr.(*apperrors.Exception).Message, "disk")
}

func TestSanitizerStripsMarkup(t *testing.T) {
	f := setup(t)
	task := f.createTask(t, 1, 2)

	comment, err := f.svc.Comments.Create(context.Background(), actor(2), task.ID, dto.CreateCommentRequest{
		Description: `<script>alert(1)</script><b>Looks good to me</b>`,
	})
	require.NoError(t, err)
	assert.False(t, strings.Contains(comment.Description, "<"))
	assert.Contains(t, comment.Description, "Looks good to me")
}
