package application

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
	"github.com/echomap/echomap/internal/infrastructure/jsonstore"
	"github.com/echomap/echomap/pkg/helpers"
)

// emailShape is the minimal local@domain.tld check applied at registration.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// AccountService implements registration, login and profile lookup.
type AccountService struct {
	Users       repository.UserRepository
	JWT         *helpers.JWTManager
	Logger      *logrus.Logger
	AdminEmails []string
}

func NewAccountService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, adminEmails []string) *AccountService {
	return &AccountService{Users: users, JWT: jwt, Logger: logger, AdminEmails: adminEmails}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
}

// Register validates the input, enforces email uniqueness with a linear scan
// over all accounts, and appends the new record.
func (s *AccountService) Register(in RegisterInput) error {
	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "is required"
	}
	if in.Email == "" {
		fields["email"] = "is required"
	} else if !emailShape.MatchString(in.Email) {
		fields["email"] = "must be a valid email"
	}
	if in.Password == "" {
		fields["password"] = "is required"
	} else if len(in.Password) < minPasswordLen {
		fields["password"] = "must be at least 6 characters"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	// Case-sensitive exact match, same as the stored value
	if _, err := s.Users.GetByEmail(in.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, jsonstore.ErrNotFound) {
		return err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Bio:       in.Bio,
		Role:      s.roleFor(in.Email),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Users.Create(u); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("account registered")
	return nil
}

func (s *AccountService) roleFor(email string) string {
	for _, a := range s.AdminEmails {
		if a == email {
			return entity.RoleAdmin
		}
	}
	return entity.RoleUser
}

// Login verifies the credentials and issues a session token. Unknown email and
// wrong password both map to ErrInvalidCredentials.
func (s *AccountService) Login(email, password string) (string, time.Time, *entity.PublicUser, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			return "", time.Time{}, nil, ErrInvalidCredentials
		}
		return "", time.Time{}, nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateToken(u.ID, u.Role)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return "", time.Time{}, nil, err
	}
	view := u.Public()
	return token, exp, &view, nil
}

// Profile resolves an account id (from a verified token) to its public view.
func (s *AccountService) Profile(userID string) (*entity.PublicUser, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	view := u.Public()
	return &view, nil
}
