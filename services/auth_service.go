package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/models"
	"storefront/storage"
	"storefront/utils"
)

// ValidationError is a recoverable form error, rendered inline next to
// the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// account is the persisted record of a registered user. Guest logins
// fabricate users on the fly and never produce one of these.
type account struct {
	UserID       int    `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// AuthService simulates authentication for the storefront. There is no
// identity provider behind it: any syntactically plausible credentials
// yield a fabricated user after a fixed latency. Accounts created through
// Register are persisted so a later login for that email verifies the
// stored password instead of accepting anything.
type AuthService struct {
	storage       storage.Store
	secret        []byte
	tokenExpiry   time.Duration
	loginDelay    time.Duration
	registerDelay time.Duration
}

func NewAuthService(st storage.Store, secret []byte, tokenExpiry, loginDelay, registerDelay time.Duration) *AuthService {
	return &AuthService{
		storage:       st,
		secret:        secret,
		tokenExpiry:   tokenExpiry,
		loginDelay:    loginDelay,
		registerDelay: registerDelay,
	}
}

func (s *AuthService) Login(email, password string) (models.Session, string, error) {
	if email == "" {
		return models.Session{}, "", &ValidationError{
			Field:   "email",
			Message: "Please provide both email and password",
		}
	}
	if password == "" {
		return models.Session{}, "", &ValidationError{
			Field:   "password",
			Message: "Please provide both email and password",
		}
	}
	if len(password) < 6 {
		return models.Session{}, "", &ValidationError{
			Field:   "password",
			Message: "Password must be at least 6 characters long",
		}
	}

	time.Sleep(s.loginDelay)

	user := models.User{
		ID:    rand.Intn(1000),
		Name:  emailLocalPart(email),
		Email: email,
	}

	if acc, ok := s.lookupAccount(email); ok {
		if !utils.VerifyPassword(acc.PasswordHash, password) {
			return models.Session{}, "", &ValidationError{
				Field:   "password",
				Message: "Invalid email or password",
			}
		}
		user = models.User{ID: acc.UserID, Name: acc.Name, Email: acc.Email}
	}

	return s.issueSession(user)
}

func (s *AuthService) Register(name, email, password string) (models.Session, string, error) {
	for _, f := range []struct{ field, value string }{
		{"name", name},
		{"email", email},
		{"password", password},
	} {
		if f.value == "" {
			return models.Session{}, "", &ValidationError{
				Field:   f.field,
				Message: "Please fill in all fields",
			}
		}
	}
	if len(password) < 6 {
		return models.Session{}, "", &ValidationError{
			Field:   "password",
			Message: "Password must be at least 6 characters long",
		}
	}
	if !strings.Contains(email, "@") {
		return models.Session{}, "", &ValidationError{
			Field:   "email",
			Message: "Please enter a valid email address",
		}
	}

	time.Sleep(s.registerDelay)

	if _, ok := s.lookupAccount(email); ok {
		return models.Session{}, "", &ValidationError{
			Field:   "email",
			Message: "Email already registered",
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.Session{}, "", fmt.Errorf("hashing password: %w", err)
	}

	acc := account{
		UserID:       rand.Intn(1000),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	data, err := json.Marshal(acc)
	if err != nil {
		return models.Session{}, "", fmt.Errorf("encoding account: %w", err)
	}
	if err := s.storage.Save(accountKey(email), data); err != nil {
		return models.Session{}, "", fmt.Errorf("persisting account: %w", err)
	}

	return s.issueSession(models.User{ID: acc.UserID, Name: acc.Name, Email: acc.Email})
}

// issueSession fabricates an opaque token for the user and mints a fresh
// client id for keying the holder's cart and wishlist state.
func (s *AuthService) issueSession(user models.User) (models.Session, string, error) {
	clientID := uuid.NewString()
	token, err := utils.GenerateToken(s.secret, s.tokenExpiry, user, clientID)
	if err != nil {
		return models.Session{}, "", fmt.Errorf("generating token: %w", err)
	}
	return models.Session{Token: token, User: user}, clientID, nil
}

func (s *AuthService) lookupAccount(email string) (account, bool) {
	data, ok, err := s.storage.Load(accountKey(email))
	if err != nil || !ok {
		return account{}, false
	}

	var acc account
	if err := json.Unmarshal(data, &acc); err != nil {
		return account{}, false
	}
	return acc, true
}

func emailLocalPart(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}

func accountKey(email string) string {
	return "account:" + strings.ToLower(email)
}
