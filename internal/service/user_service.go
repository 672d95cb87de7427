package service

import (
	"context"
	"errors"
	"fmt"
	"herbal/internal/auth"
	"herbal/internal/entity/common"
	"herbal/internal/entity/db"
	"herbal/internal/entity/dto"
	"herbal/internal/model"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService handles registration, login and account administration.
type UserService struct {
	repo model.Repository
	now  func() time.Time
}

// NewUserService 创建用户服务实例
func NewUserService(repo model.Repository) *UserService {
	return &UserService{repo: repo, now: time.Now}
}

// Register creates a regular user account.
func (s *UserService) Register(ctx context.Context, req *dto.AuthRegisterRequest) (*db.User, error) {
	if req == nil {
		return nil, validationf("empty registration")
	}
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" {
		return nil, validationf("username and email are required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, validationf("%v", err)
	}
	user := &db.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         common.RoleUser,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, mapRepoError(err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")
	return user, nil
}

// Authenticate checks credentials and records the login time.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*db.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}
	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidLogin
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	now := s.now().UTC()
	if err := s.repo.UpdateUser(ctx, user.ID, db.UserUpdates{LastLoginAt: &now}); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to record last login")
	} else {
		user.LastLoginAt = &now
	}
	return user, nil
}

// Get loads a user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*db.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return user, nil
}

// List returns a page of users. Admin only.
func (s *UserService) List(ctx context.Context, actor Actor, query *dto.UserQuery) ([]db.User, *common.Meta, error) {
	if !actor.Can(common.CapManageUsers) {
		return nil, nil, ErrPermissionDenied
	}
	params := dto.UserQuery{}
	if query != nil {
		params = *query
	}
	params.Normalize(20, 100)
	return s.repo.ListUsers(ctx, &params)
}

// Update changes role, active flag or names of a user. Admins cannot demote
// or deactivate themselves.
func (s *UserService) Update(ctx context.Context, actor Actor, id uint, req *dto.UserUpdateRequest) (*db.User, error) {
	if !actor.Can(common.CapManageUsers) {
		return nil, ErrPermissionDenied
	}
	if req == nil {
		return nil, validationf("no updates provided")
	}

	var updates db.UserUpdates
	if req.Role != nil {
		role, ok := common.ParseRole(*req.Role)
		if !ok {
			return nil, validationf("unknown role %q", *req.Role)
		}
		if id == actor.ID && role != actor.Role {
			return nil, validationf("cannot change your own role")
		}
		updates.Role = &role
	}
	if req.IsActive != nil {
		if id == actor.ID && !*req.IsActive {
			return nil, validationf("cannot deactivate your own account")
		}
		updates.IsActive = req.IsActive
	}
	if req.FirstName != nil {
		first := strings.TrimSpace(*req.FirstName)
		updates.FirstName = &first
	}
	if req.LastName != nil {
		last := strings.TrimSpace(*req.LastName)
		updates.LastName = &last
	}
	if updates.IsEmpty() {
		return nil, validationf("no updates provided")
	}

	if err := s.repo.UpdateUser(ctx, id, updates); err != nil {
		return nil, mapRepoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  id,
		"admin_id": actor.ID,
	}).Info("user updated")

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", mapRepoError(err))
	}
	return user, nil
}
