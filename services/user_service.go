package services

import (
	"context"
	"strings"
	"time"

	"item-notes/auth"
	"item-notes/models"

	"github.com/google/uuid"
)

// UserService handles account management
type UserService struct {
	repo             UserRepository
	openRegistration bool
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, openRegistration bool) *UserService {
	return &UserService{
		repo:             repo,
		openRegistration: openRegistration,
	}
}

// List returns a page of users (superuser only, enforced by routing)
func (us *UserService) List(ctx context.Context, skip, limit int) (*models.UsersPublic, error) {
	skip, limit = normalizePage(skip, limit)

	users, count, err := us.repo.ListUsers(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	return &models.UsersPublic{Data: users, Count: count}, nil
}

// Create adds an account on behalf of a superuser
func (us *UserService) Create(ctx context.Context, in models.UserCreate) (*models.User, error) {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	return us.create(ctx, in.Email, in.Password, in.FullName, isActive, in.IsSuperuser)
}

// Register is the self-service signup path
func (us *UserService) Register(ctx context.Context, in models.UserRegister) (*models.User, error) {
	if !us.openRegistration {
		return nil, ErrRegistrationClosed
	}
	return us.create(ctx, in.Email, in.Password, in.FullName, true, false)
}

// EnsureSuperuser creates the bootstrap superuser if the email is unknown.
// It reports whether a user was created.
func (us *UserService) EnsureSuperuser(ctx context.Context, email, password string) (*models.User, bool, error) {
	existing, err := us.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user, err := us.create(ctx, email, password, nil, true, true)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (us *UserService) create(ctx context.Context, email, password string, fullName *string, isActive, isSuperuser bool) (*models.User, error) {
	email = strings.TrimSpace(email)

	existing, err := us.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:             uuid.New().String(),
		Email:          email,
		FullName:       fullName,
		HashedPassword: hash,
		IsActive:       isActive,
		IsSuperuser:    isSuperuser,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := us.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns a user; non-superusers may only read themselves
func (us *UserService) Get(ctx context.Context, requester *models.User, userID string) (*models.User, error) {
	if requester.ID == userID {
		return requester, nil
	}
	if !requester.IsSuperuser {
		return nil, ErrNotEnoughPermissions
	}

	user, err := us.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies an administrative update to any user
func (us *UserService) Update(ctx context.Context, userID string, in models.UserUpdate) (*models.User, error) {
	user, err := us.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if in.Email != nil {
		if err := us.ensureEmailFree(ctx, *in.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.FullName != nil {
		user.FullName = in.FullName
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hash
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsSuperuser != nil {
		user.IsSuperuser = *in.IsSuperuser
	}

	if err := us.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateMe lets a user change their own email and name
func (us *UserService) UpdateMe(ctx context.Context, requester *models.User, in models.UserUpdateMe) (*models.User, error) {
	user := *requester

	if in.Email != nil {
		if err := us.ensureEmailFree(ctx, *in.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.FullName != nil {
		user.FullName = in.FullName
	}

	if err := us.repo.UpdateUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes the requester's password after checking the current one
func (us *UserService) UpdatePassword(ctx context.Context, requester *models.User, in models.UpdatePassword) error {
	if !auth.VerifyPassword(in.CurrentPassword, requester.HashedPassword) {
		return ErrIncorrectPassword
	}
	if in.CurrentPassword == in.NewPassword {
		return ErrSamePassword
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}

	user := *requester
	user.HashedPassword = hash
	return us.repo.UpdateUser(ctx, &user)
}

// DeleteMe removes the requester's own account
func (us *UserService) DeleteMe(ctx context.Context, requester *models.User) error {
	if requester.IsSuperuser {
		return ErrSuperuserSelfDelete
	}
	return us.repo.DeleteUser(ctx, requester.ID)
}

// Delete removes another account; owned items and notes go with it
func (us *UserService) Delete(ctx context.Context, requester *models.User, userID string) error {
	if requester.ID == userID {
		return ErrSuperuserSelfDelete
	}

	user, err := us.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return us.repo.DeleteUser(ctx, userID)
}

func (us *UserService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := us.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrEmailAlreadyRegistered
	}
	return nil
}
