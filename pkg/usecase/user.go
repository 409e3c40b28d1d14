package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "user name is required")
	}
	if user.Role != "" && !user.Role.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid user role", goerr.V("role", user.Role))
	}

	created, err := uc.repo.User().Create(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user")
	}
	return created, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user")
	}
	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := uc.repo.User().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (uc *UserUseCase) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Role != "" && !user.Role.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid user role", goerr.V("role", user.Role))
	}

	updated, err := uc.repo.User().Update(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V("id", user.ID))
		}
		return nil, goerr.Wrap(err, "failed to update user")
	}
	return updated, nil
}
