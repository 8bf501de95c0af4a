// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package service

import (
	"context"
	"fmt"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/internal/utils"
	"github.com/mlevkova/bijoux-shop/models"
)

// userService is the concrete implementation of UserService.
// It validates inbound payloads, derives the PBKDF2 password hash, and
// delegates persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository
	validator      validatorContract

	logger *logger.Logger
}

// validatorContract is the subset of the validators package this layer
// needs. Declared locally so services can be tested with any stub.
type validatorContract interface {
	Validate(ctx context.Context, value any, fields ...string) error
}

// NewUserService constructs a UserService wired to the given repository.
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, validator validatorContract, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser registers a new account.
//
// The plain-text password is replaced with its PBKDF2-SHA256 hash before the
// row is inserted. Uniqueness of username and email is enforced by the
// database; a violation surfaces as store.ErrUsernameAlreadyExists or
// store.ErrEmailAlreadyExists.
func (u *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("invalid user payload")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		IsAdmin:  req.IsAdmin,
	}

	userID, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	user.UserID = userID
	return user, nil
}

// GetUserByUsername returns a single account, or a wrapped
// store.ErrUserNotFound.
func (u *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}

// GetAllUsers returns every account, or a wrapped store.ErrNoUsersFound when
// the table is empty.
func (u *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
