package services

import (
	"context"
	"errors"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	"digiwork-hub.com/digiwork-hub/internal/codec"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	"digiwork-hub.com/digiwork-hub/internal/mail"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

// Notifier accepts a notification for asynchronous delivery. It must not
// block the caller.
type Notifier interface {
	Notify(title, body string, recipients []uint)
}

// Deps are the collaborators shared by every service.
type Deps struct {
	Store    *repository.Store
	Files    *storage.FileStore
	Notifier Notifier
	Mailer   mail.Mailer
	Tokens   *auth.Tokens
	Hasher   *auth.Hasher
	Patterns *rules.Patterns
	Location *time.Location
	Now      func() time.Time
}

type core struct {
	store     *repository.Store
	files     *storage.FileStore
	notifier  Notifier
	sanitizer *bluemonday.Policy
	loc       *time.Location
	now       func() time.Time
}

func newCore(d Deps) *core {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	loc := d.Location
	if loc == nil {
		loc = time.Local
	}
	return &core{
		store:     d.Store,
		files:     d.Files,
		notifier:  d.Notifier,
		sanitizer: bluemonday.StrictPolicy(),
		loc:       loc,
		now:       func() time.Time { return now().In(loc) },
	}
}

type notice struct {
	title      string
	body       string
	recipients []uint
}

// outcome is what a committed mutation leaves to do afterwards.
type outcome struct {
	notice  *notice
	discard []string
}

// apply runs fn in one transaction. The notification is enqueued and the
// discarded files removed only after the commit succeeds.
func (c *core) apply(ctx context.Context, op string, fn func(tx *repository.Store) (outcome, error)) error {
	var out outcome
	err := c.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		out, err = fn(tx)
		return err
	})
	if err != nil {
		return c.fail(op, err)
	}

	c.files.RemoveAll(out.discard)
	if out.notice != nil && len(out.notice.recipients) > 0 {
		c.notifier.Notify(out.notice.title, out.notice.body, out.notice.recipients)
	}
	return nil
}

// fail maps an error into the taxonomy. Anything unexpected is logged with
// its cause and surfaced as a storage failure.
func (c *core) fail(op string, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, repository.ErrOptimisticLock):
		return apperrors.ErrOptimisticLock
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound("record not found")
	}

	zap.L().Error("operation failed", zap.String("op", op), zap.Error(err))
	return apperrors.Storage(err)
}

// missing turns a repository miss into the entity's NotFound error.
func missing(err error, notFound *apperrors.Exception) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}

func (c *core) clean(s string) string {
	return c.sanitizer.Sanitize(s)
}

// recipients merges groups of user ids, dropping repeats and keeping the
// first occurrence order.
func recipients(groups ...[]uint) []uint {
	seen := mapset.NewThreadUnsafeSet[uint]()
	out := make([]uint, 0)
	for _, group := range groups {
		for _, id := range group {
			if seen.Add(id) {
				out = append(out, id)
			}
		}
	}
	return out
}

func (c *core) parseDue(s string) (time.Time, error) {
	return codec.ParseDate(s, c.loc)
}

// Services bundles every operation exposed to the HTTP layer.
type Services struct {
	Auth        *AuthService
	Users       *UserService
	Tasks       *TaskService
	Subtasks    *SubtaskService
	Checklists  *ChecklistService
	Comments    *CommentService
	Attachments *AttachmentService
	Messages    *MessageService
}

func New(d Deps) *Services {
	c := newCore(d)
	return &Services{
		Auth:        &AuthService{core: c, mailer: d.Mailer, tokens: d.Tokens, hasher: d.Hasher, patterns: d.Patterns},
		Users:       &UserService{core: c, hasher: d.Hasher, patterns: d.Patterns},
		Tasks:       &TaskService{core: c},
		Subtasks:    &SubtaskService{core: c},
		Checklists:  &ChecklistService{core: c},
		Comments:    &CommentService{core: c},
		Attachments: &AttachmentService{core: c},
		Messages:    &MessageService{core: c},
	}
}
