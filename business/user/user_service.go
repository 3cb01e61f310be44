package user

import (
	"context"
	"errors"
	"strconv"
	"time"
	"urbankicks/domain"
	"urbankicks/internal/repository/redis"
	"urbankicks/pkg/logger"
	"urbankicks/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	UpdateBlocked(ctx context.Context, id uint, blocked bool) error
}

// SessionRepository mirrors issued tokens server-side.
type SessionRepository interface {
	StoreSession(ctx context.Context, userID, token string, data redis.SessionData, ttl time.Duration) error
	DeleteSession(ctx context.Context, userID, token string) error
}

const sessionTTL = 24 * time.Hour

type UserService struct {
	userRepo    UserRepository
	validate    *validator.Validate
	sessionRepo SessionRepository
	adminEmail  string
}

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	sessionRepo SessionRepository,
	adminEmail string,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		validate:    validate,
		sessionRepo: sessionRepo,
		adminEmail:  adminEmail,
	}
}

// Signup registers a new customer. The configured store admin email is
// the one account that gets the admin role, decided right here rather
// than re-checked per request.
func (s *UserService) Signup(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already in use")
		return domain.User{}, errors.New("email already in use")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	role := domain.RoleCustomer
	if s.adminEmail != "" && user.Email == s.adminEmail {
		role = domain.RoleAdmin
	}

	newUser := domain.User{
		Email:    user.Email,
		Username: user.Username,
		Password: string(passwordHash),
		Blocked:  false,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

// Login checks credentials and issues a JWT carrying the role claim.
// Blocked accounts cannot establish a session.
func (s *UserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("User not found", err)
		return "", domain.User{}, errors.New("user not found")
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid credentials")
	}

	if user.Blocked {
		logger.Warn("Blocked account attempted login", "email", email)
		return "", domain.User{}, errors.New("account is blocked")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.sessionRepo != nil {
		now := time.Now()
		err = s.sessionRepo.StoreSession(ctx, userIDStr, token, redis.SessionData{
			UserID:    userIDStr,
			Email:     user.Email,
			Role:      user.Role,
			Token:     token,
			IssuedAt:  now,
			ExpiresAt: now.Add(sessionTTL),
		}, sessionTTL)
		if err != nil {
			logger.Error("Failed to store session", err)
			return "", domain.User{}, errors.New("failed to establish session")
		}
	}

	user.Password = ""
	return token, user, nil
}

// Logout revokes the server-side session for a token. The JWT itself
// stays valid until expiry, but the session check will reject it.
func (s *UserService) Logout(ctx context.Context, userID uint, token string) error {
	if s.sessionRepo == nil {
		return nil
	}

	userIDStr := strconv.FormatUint(uint64(userID), 10)
	if err := s.sessionRepo.DeleteSession(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to delete session", err)
		return errors.New("failed to log out")
	}

	return nil
}

// GetAllCustomers returns every registered user, passwords stripped.
func (s *UserService) GetAllCustomers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get customers", err)
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}

// ToggleBlock flips the customer's blocked flag and returns the new
// value. Read-then-write; the row's atomicity is the only guard.
func (s *UserService) ToggleBlock(ctx context.Context, id uint) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Customer not found for block toggle", err)
		return false, err
	}

	blocked := !user.Blocked
	if err := s.userRepo.UpdateBlocked(ctx, id, blocked); err != nil {
		logger.Error("Failed to update blocked flag", err)
		return false, err
	}

	return blocked, nil
}
