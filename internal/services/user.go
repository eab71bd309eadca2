package service

import (
	"context"

	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
	cost int
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo, cost: bcrypt.DefaultCost}
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch users").WithError(err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, readError(err, "User")
	}

	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Username: utils.SanitizeText(req.Username),
		FullName: utils.SanitizeOptional(req.FullName),
		Level:    req.Level,
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, writeError(err, "User", "create")
	}

	user.Password = ""

	return user, nil
}

// UpdateUser re-hashes the password when one is supplied.
func (s *userService) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {

	if req.Level != nil && !validLevel(*req.Level) {
		return nil, errors.AddValidationError("level", "must be one of admin, cashier, warehouse")
	}

	req.Username = utils.SanitizeOptional(req.Username)
	req.FullName = utils.SanitizeOptional(req.FullName)

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.cost)
		if err != nil {
			return nil, errors.InternalError("Failed to secure password").WithError(err)
		}
		hashed := string(hashedPassword)
		req.Password = &hashed
	}

	user, err := s.repo.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, writeError(err, "User", "update")
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return writeError(err, "User", "delete")
	}

	return nil
}

func validLevel(level models.UserLevel) bool {
	switch level {
	case models.UserLevelAdmin, models.UserLevelCashier, models.UserLevelWarehouse:
		return true
	}
	return false
}
