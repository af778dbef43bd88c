package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/repositories"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/auth"
	"github.com/yigit/egresados/internal/pkg/filestorage"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// UserService defines the interface for user administration
type UserService interface {
	ListUsers(ctx context.Context, query *dto.UserListQuery) (*dto.PaginatedResponse, error)
	GetUser(ctx context.Context, id int64) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	SetUserStatus(ctx context.Context, actorID, id int64, active bool) error
	DeleteUser(ctx context.Context, actorID, id int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo UserStore
	files    StoredFileIndex
	uploads  uploads
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, files StoredFileIndex, storage filestorage.FileStorage, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		files:    files,
		uploads:  uploads{storage: storage, logger: logger},
		logger:   logger,
	}
}

// ListUsers returns one page of users
func (s *userServiceImpl) ListUsers(ctx context.Context, query *dto.UserListQuery) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(query.Page, query.PageSize)

	users, total, err := s.userRepo.List(ctx, repositories.UserFilter{
		Role:   models.RoleType(query.Role),
		Search: strings.TrimSpace(query.Search),
		Offset: offset,
		Limit:  uint64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.NewUserResponse(u))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(int64(total), query.Page, limit),
	}, nil
}

// GetUser retrieves a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// CreateUser creates an account with any role
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     models.RoleType(req.Role),
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User created")
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateUser changes account data. An empty password keeps the current hash.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Role = models.RoleType(req.Role)
	user.Password = ""
	if req.Password != "" {
		if user.Password, err = auth.HashPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// SetUserStatus activates or deactivates an account
func (s *userServiceImpl) SetUserStatus(ctx context.Context, actorID, id int64, active bool) error {
	if actorID == id && !active {
		return apperrors.NewForbiddenError("you cannot deactivate your own account")
	}
	return s.userRepo.SetActive(ctx, id, active)
}

// DeleteUser removes an account with every dependent record, then its stored files
func (s *userServiceImpl) DeleteUser(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return apperrors.NewForbiddenError("you cannot delete your own account")
	}

	paths, err := s.files.StoredFilesByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("error listing stored files: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.uploads.remove(paths...)
	s.logger.Info().Int64("userID", id).Int("files", len(paths)).Msg("User deleted")
	return nil
}
