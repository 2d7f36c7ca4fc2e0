package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/moviereview/go-movie-review/internal/config"
	"github.com/moviereview/go-movie-review/internal/logger"
	"github.com/moviereview/go-movie-review/internal/store"
	"github.com/moviereview/go-movie-review/internal/utils"
	"github.com/moviereview/go-movie-review/internal/workers"
	"github.com/moviereview/go-movie-review/models"
)

// passwordHashCost is the bcrypt work factor applied to every stored
// password. 10 (the library default) is fixed here for reproducibility:
// raising it strictly increases both security and CPU cost per call.
const passwordHashCost = bcrypt.DefaultCost

// minPasswordLength is the minimum accepted password length, applied at
// registration and password change.
const minPasswordLength = 6

// dummyPasswordHash is a valid bcrypt digest (cost 10) that login verifies
// against when the requested account does not exist, so the unknown-email
// and wrong-password branches cost one bcrypt comparison each and cannot be
// told apart by timing.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// emailPattern is the accepted local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, profile
// mutation, and JWT token lifecycle using a UserRepository for persistence
// and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create, look up,
	// and mutate accounts.
	userRepository store.UserRepository

	// hashPool bounds concurrent bcrypt work so password hashing cannot
	// starve unrelated request handlers.
	hashPool *workers.HashPool

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hashPool *workers.HashPool, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashPool:       hashPool,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that email and password are present, that the email matches
// the accepted shape, and that the password satisfies the length policy,
// then hashes the password through the worker pool and delegates
// persistence to the UserRepository. The email is stored lower-cased.
//
// Returns the persisted account (with server-assigned UserID, CreatedAt,
// and role/theme defaults) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidEmailFormat if the email shape is rejected.
//   - ErrPasswordTooShort if the password is below the minimum length.
//   - A wrapped storage error if the repository call fails (e.g.
//     store.ErrEmailAlreadyExists when the email is already taken).
//
// A failed registration leaves no account record behind.
func (a *authService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("register: missing email or password")
		return models.User{}, ErrInvalidDataProvided
	}

	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		log.Error().Str("email", email).Msg("register: invalid email format")
		return models.User{}, ErrInvalidEmailFormat
	}

	if len(password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	passwordHash, err := a.hashPool.Hash(ctx, password, passwordHashCost)
	if err != nil {
		log.Err(err).Msg("register: password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It looks the account up by normalized email and verifies the password
// against the stored bcrypt digest. When the account does not exist, the
// password is still verified against a dummy digest so both failure
// branches take one bcrypt comparison; either way the caller receives the
// same ErrInvalidCredentials, preventing account enumeration through error
// text or timing.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("login: missing email or password")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// burn the same bcrypt work as the found-user branch
			_ = a.hashPool.Compare(ctx, dummyPasswordHash, password)
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("login: user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := a.hashPool.Compare(ctx, foundUser.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().Int64("id", foundUser.UserID).Msg("login: wrong password")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("login: password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}

	return foundUser, nil
}

// GetUser re-fetches the account with the given identifier.
//
// Used by token verification so that profile changes made after issuance
// are reflected; the token payload is never used as a data source.
// Returns a wrapped store.ErrUserNotFound if the account no longer exists.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial profile update.
//
// At least one of name/theme must be present (ErrNoFieldsToUpdate
// otherwise); a present theme must be a known value (ErrInvalidTheme).
// Only the provided fields are written.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.User{}, ErrNoFieldsToUpdate
	}

	if update.Theme != nil && !update.Theme.Valid() {
		return models.User{}, ErrInvalidTheme
	}

	updatedUser, err := a.userRepository.UpdateUserFields(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}

// ChangePassword verifies the current password and replaces the stored
// digest with a fresh hash of the new one.
//
// Returns:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrPasswordTooShort if the new password is below the minimum length.
//   - A wrapped store.ErrUserNotFound if the account does not exist.
//   - ErrCurrentPasswordIncorrect if the current password does not match.
//
// A failed change leaves the old digest intact. Tokens issued before the
// change remain valid until their natural expiry.
func (a *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("change password: user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := a.hashPool.Compare(ctx, foundUser.PasswordHash, currentPassword); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().Int64("id", userID).Msg("change password: current password incorrect")
			return ErrCurrentPasswordIncorrect
		}

		log.Err(err).Msg("change password: verification failed")
		return fmt.Errorf("password verification failed: %w", err)
	}

	newHash, err := a.hashPool.Hash(ctx, newPassword, passwordHashCost)
	if err != nil {
		log.Err(err).Msg("change password: hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if _, err := a.userRepository.UpdateUserPassword(ctx, userID, newHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("change password: hash rotation failed")
		return fmt.Errorf("password rotation failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim plus the account's id, email,
// and role, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry, and normalises the library error into
// the service taxonomy:
//   - expired token → ErrTokenIsExpired
//   - bad signature → ErrTokenSignatureInvalid
//   - anything else → ErrTokenIsInvalid
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenIsExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenSignatureInvalid
		default:
			return models.Token{}, ErrTokenIsInvalid
		}
	}

	return token, nil
}

// normalizeEmail lower-cases and trims an email so lookups and the
// uniqueness constraint share one canonical key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
