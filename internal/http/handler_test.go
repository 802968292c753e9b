package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	"digiwork-hub.com/digiwork-hub/internal/projection"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
	"digiwork-hub.com/digiwork-hub/internal/services"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

var now = time.Date(2030, time.June, 10, 9, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (n *recordingNotifier) Notify(title, _ string, _ []uint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.titles)
}

type nopMailer struct{}

func (nopMailer) Send(context.Context, string, string, string) error { return nil }

type server struct {
	e      *echo.Echo
	store  *repository.Store
	tokens *auth.Tokens
	notes  *recordingNotifier
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

func newServer(t *testing.T) *server {
	t.Helper()

	patterns, err := rules.CompilePatterns(
		`^[A-Za-z0-9_]+$`,
		`^[^@\s]+@[^@\s]+\.[a-z]+$`,
		`^(?=.*[0-9])(?=.*[A-Z]).+$`,
	)
	require.NoError(t, err)

	s := &server{
		store:  repository.NewStore(setupTestDB(t)),
		tokens: auth.NewTokens("test-secret", time.Hour),
		notes:  &recordingNotifier{},
	}
	files := storage.NewFileStore(afero.NewMemMapFs())
	require.NoError(t, files.SeedPlaceholders())
	svc := services.New(services.Deps{
		Store:    s.store,
		Files:    files,
		Notifier: s.notes,
		Mailer:   nopMailer{},
		Tokens:   s.tokens,
		Hasher:   auth.NewHasher(4),
		Patterns: patterns,
		Location: time.UTC,
		Now:      func() time.Time { return now },
	})

	s.e = echo.New()
	s.e.JSONSerializer = Serializer{}
	s.e.HTTPErrorHandler = ErrorHandler
	Register(s.e, NewHandler(svc, projection.NewProjector(s.store.Users), files), svc.Auth)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.store.Users.Create(context.Background(), &model.User{
			Name:              fmt.Sprintf("user%d", i),
			Email:             fmt.Sprintf("user%d@example.com", i),
			Password:          "x",
			ImagePath:         "images/default.png",
			NotificationToken: fmt.Sprintf("tok-%d", i),
		}))
	}
	return s
}

func (s *server) token(t *testing.T, userID uint) string {
	t.Helper()
	raw, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return raw
}

func (s *server) do(t *testing.T, method, target string, userID uint, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != 0 {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token(t, userID))
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

const taskBody = `{
	"title": "Quarterly planning session",
	"description": "Collect the goals of every team and merge them into a single plan.",
	"due": "12/06/2030 10:00 AM",
	"assignee": [2, 3]
}`

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/api/tasks/assigned", 0, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/assigned", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body dto.ErrorResponse
	decode(t, rec, &body)
	assert.Equal(t, "Authentication Error", body.Type)
}

func TestTaskLifecycle(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodPost, "/api/tasks", 1, taskBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.TaskResponse
	decode(t, rec, &created)
	assert.Equal(t, "Quarterly planning session", created.Title)
	assert.Equal(t, "user1", created.Creator.Name)
	require.Len(t, created.Assignees, 2)
	assert.Equal(t, 1, s.notes.count())

	path := fmt.Sprintf("/api/tasks/%d", created.TaskID)

	rec = s.do(t, http.MethodPut, path+"/status", 2, `{"status":"In Progress"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated dto.TaskResponse
	decode(t, rec, &updated)
	assert.Equal(t, "In Progress", updated.Status)

	rec = s.do(t, http.MethodGet, "/api/tasks/assigned", 3, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var assigned []dto.TaskResponse
	decode(t, rec, &assigned)
	assert.Len(t, assigned, 1)

	rec = s.do(t, http.MethodDelete, path, 2, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var denied dto.ErrorResponse
	decode(t, rec, &denied)
	assert.Equal(t, "Only task creator can delete task", denied.Message)

	rec = s.do(t, http.MethodDelete, path, 1, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, path, 1, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskDetailIncludesChildren(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodPost, "/api/tasks", 1, taskBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created dto.TaskResponse
	decode(t, rec, &created)
	base := fmt.Sprintf("/api/tasks/%d", created.TaskID)

	rec = s.do(t, http.MethodPost, base+"/comments", 2, `{"description":"Looks good to me"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var comment dto.CommentResponse
	decode(t, rec, &comment)

	rec = s.do(t, http.MethodPut, fmt.Sprintf("/api/comments/%d/like", comment.CommentID), 3, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, base, 3, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail dto.TaskDetailResponse
	decode(t, rec, &detail)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, []uint{3}, detail.Comments[0].LikeIDs)
	assert.Empty(t, detail.Subtasks)
}

func TestMalformedInput(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/api/tasks/abc", 1, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/tasks", 1, `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/tasks/99/title", 1, `{"title":"A perfectly fine title"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, s.notes.count())
}

func multipartRequest(t *testing.T, target, field, doc string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField(field, doc))
	for name, content := range files {
		part, err := w.CreateFormFile(filesField, name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestMessageFlow(t *testing.T) {
	s := newServer(t)

	req := multipartRequest(t, "/api/messages", "messageBody",
		`{"receiverId":2,"title":"Release checklist","description":"Please review the release checklist and sign it off before Friday morning."}`,
		map[string]string{"notes.pdf": "%PDF"})
	req.Header.Set(echo.HeaderAuthorization, s.token(t, 1))
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sent dto.MessageSummary
	decode(t, rec, &sent)
	assert.Equal(t, "user2", sent.Other.Name)

	rec = s.do(t, http.MethodGet, "/api/messages/received", 2, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var inbox []dto.MessageSummary
	decode(t, rec, &inbox)
	require.Len(t, inbox, 1)
	assert.Equal(t, "user1", inbox[0].Other.Name)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/messages/%d", sent.MessageID), 3, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/messages/%d", sent.MessageID), 2, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail dto.MessageDetailResponse
	decode(t, rec, &detail)
	require.Len(t, detail.AttachmentPaths, 1)

	rec = s.do(t, http.MethodGet, "/api/files/"+detail.AttachmentPaths[0], 2, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF", rec.Body.String())
}

func TestSendMessageRequiresBodyField(t *testing.T) {
	s := newServer(t)

	req := multipartRequest(t, "/api/messages", "other", "{}", nil)
	req.Header.Set(echo.HeaderAuthorization, s.token(t, 1))
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeFileRejectsUnknownDirectory(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/api/files/secrets/x.txt", 1, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletedUserImageIsServed(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/api/users/99", 1, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile dto.UserProfile
	decode(t, rec, &profile)
	assert.Equal(t, "UnknownUser", profile.Name)

	rec = s.do(t, http.MethodGet, "/api/files/"+profile.Image, 1, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
