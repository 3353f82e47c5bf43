package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkguid"
	"github.com/shandysiswandi/goadvice/internal/user/entity"
)

type Store interface {
	Create(ctx context.Context, user entity.User) error
	Get(ctx context.Context, id int64) (entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type Validator interface {
	Validate(v any) error
}

type Dependency struct {
	Store     Store
	Validator Validator
	ID        pkguid.NumberID
	Clock     Clock
}

type Usecase struct {
	store     Store
	validator Validator
	id        pkguid.NumberID
	clock     Clock
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = systemClock{}
	}

	return &Usecase{
		store:     dep.Store,
		validator: dep.Validator,
		id:        dep.ID,
		clock:     clock,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if u.validator != nil {
		if err := u.validator.Validate(&in); err != nil {
			return entity.User{}, err
		}
	}

	user := entity.User{
		ID:        u.id.Generate(),
		Name:      in.Name,
		Email:     in.Email,
		Age:       in.Age,
		CreatedAt: u.clock.Now().UTC(),
	}

	if err := u.store.Create(ctx, user); err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "id", user.ID)

	return user, nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (entity.User, error) {
	user, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.User{}, u.notFound(err, id)
	}

	return user, nil
}

func (u *Usecase) Delete(ctx context.Context, id int64) error {
	if err := u.store.Delete(ctx, id); err != nil {
		return u.notFound(err, id)
	}

	slog.InfoContext(ctx, "user deleted", "id", id)

	return nil
}

func (u *Usecase) notFound(err error, id int64) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.WrapBusiness(err, fmt.Sprintf("user %d not found", id), entity.CodeUserNotFound)
	}
	return fmt.Errorf("user %d: %w", id, err)
}
