package projection

import (
	"context"

	"github.com/pkg/errors"

	"digiwork-hub.com/digiwork-hub/internal/codec"
	"digiwork-hub.com/digiwork-hub/internal/constants"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
)

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// Projector maps stored rows to response bodies, resolving user ids with
// one lookup each. Deleted users become the UnknownUser placeholder; any
// other lookup failure fails the projection.
type Projector struct {
	users UserFinder
}

func NewProjector(users UserFinder) *Projector {
	return &Projector{users: users}
}

// resolver serves the user lookups of one projection call and keeps the
// first failure.
type resolver struct {
	ctx   context.Context
	users UserFinder
	seen  map[uint]*model.User
	err   error
}

func (p *Projector) resolver(ctx context.Context) *resolver {
	return &resolver{ctx: ctx, users: p.users, seen: make(map[uint]*model.User)}
}

func (r *resolver) lookup(id uint) *model.User {
	if user, ok := r.seen[id]; ok {
		return user
	}
	if r.err != nil {
		return nil
	}

	user, err := r.users.FindByID(r.ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			r.err = errors.Wrapf(err, "load user %d", id)
			return nil
		}
		user = nil
	}
	r.seen[id] = user
	return user
}

func (r *resolver) user(id uint) dto.UserSummary {
	user := r.lookup(id)
	if user == nil {
		return dto.UserSummary{ID: id, Name: constants.UnknownUserName, Image: constants.DeletedUserImage}
	}
	return dto.UserSummary{ID: user.ID, Name: user.Name, Image: user.ImagePath}
}

func (r *resolver) summaries(ids []uint) []dto.UserSummary {
	out := make([]dto.UserSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.user(id))
	}
	return out
}

func (r *resolver) names(ids []uint) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.user(id).Name)
	}
	return out
}

func (p *Projector) User(ctx context.Context, id uint) (dto.UserSummary, error) {
	r := p.resolver(ctx)
	resp := r.user(id)
	return resp, r.err
}

func (p *Projector) Profile(ctx context.Context, id uint) (dto.UserProfile, error) {
	r := p.resolver(ctx)
	user := r.lookup(id)
	if r.err != nil {
		return dto.UserProfile{}, r.err
	}
	if user == nil {
		return dto.UserProfile{
			ID:    id,
			Name:  constants.UnknownUserName,
			Email: constants.UnknownUserEmail,
			Image: constants.DeletedUserImage,
			Role:  constants.DefaultRole,
		}, nil
	}
	return dto.UserProfile{ID: user.ID, Name: user.Name, Email: user.Email, Image: user.ImagePath, Role: user.Role}, nil
}

func ids(l codec.IDList) []uint {
	if l == nil {
		return []uint{}
	}
	return []uint(l)
}

func strs(l codec.PathList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
