package user

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 100
	minEmailLength    = 3
	maxUsernameLength = 30
	minUsernameLength = 3
	bcryptCost        = 12
)

var (
	ErrInvalidEmail          = errors.New("email address is not valid")
	ErrEmailLength           = fmt.Errorf("email address is too long or too short, max length: %d, min length: %d", maxEmailLength, minEmailLength)
	ErrUsernameLength        = fmt.Errorf("username is too long or too short, max length: %d, min length: %d", maxUsernameLength, minUsernameLength)
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInternalError         = errors.New("internal server error")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(username, email, password string) (*User, error)
	Authenticate(username, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength || len(email) <= minEmailLength {
		return ErrEmailLength
	}
	return nil
}

func (s *service) Register(username, email, password string) (*User, error) {
	err := validateEmailAddress(email)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if len(username) > maxUsernameLength || len(username) < minUsernameLength {
		return nil, ErrUsernameLength
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	existingUser, err := s.repo.userExistsByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Printf("Error checking for existing user: %v", err)
		return nil, ErrInternalError
	}

	if existingUser != nil {
		if existingUser.Username == username {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		log.Printf("Error during hashing the password: %v", err)
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.repo.createUser(user)
	if err != nil {
		log.Printf("Error during creating the user: %v", err)
		return nil, ErrInternalError
	}

	return user, nil
}

// Authenticate verifies a username/password pair. A missing user and a wrong
// password produce the same error so login attempts cannot probe usernames.
func (s *service) Authenticate(username, password string) (*User, error) {
	user, err := s.repo.getUserByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user for login: %v", err)
		return nil, ErrInternalError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}
