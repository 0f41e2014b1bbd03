package identity

import (
	"context"
	"errors"
	"strings"

	"codeberg.org/bookhub/server/bookhub/users"
	"codeberg.org/bookhub/server/internal/auth"
)

// ProviderGoogle is recorded on accounts created through Google sign-in.
const ProviderGoogle = "google"

// implements local registration/login and Google account linking
type Service struct {
	store  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewService(store UserStore, hasher PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{store: store, hasher: hasher, tokens: tokens}
}

// creates a password account and returns its id; no token is issued
func (s *Service) Register(ctx context.Context, reg Registration) (string, error) {
	name := strings.TrimSpace(reg.Name)
	email := strings.TrimSpace(reg.Email)

	if name == "" || email == "" || reg.Password == "" {
		return "", newError(ErrValidation, MsgFieldsRequired, nil)
	}

	role := strings.TrimSpace(reg.Role)
	if role == "" {
		role = auth.RoleUser
	}

	if !auth.IsValidRole(role) {
		return "", newError(ErrValidation, MsgInvalidRole, nil)
	}

	_, err := s.store.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", newError(ErrConflict, MsgUserExists, nil)
	case !errors.Is(err, users.ErrNotFound):
		return "", err
	}

	hashed, err := s.hasher.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			return "", newError(ErrValidation, "Password must be between 1 and 72 bytes.", err)
		}

		return "", err
	}

	id, err := s.store.Create(ctx, &users.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	})

	if err != nil {
		// a concurrent registration won the unique index
		if errors.Is(err, users.ErrEmailTaken) {
			return "", newError(ErrConflict, MsgUserExists, err)
		}

		return "", err
	}

	return id, nil
}

// checks email and password and issues a token
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return nil, newError(ErrValidation, MsgLoginFieldsMissing, nil)
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, newError(ErrInvalidCredentials, MsgInvalidCredentials, nil)
		}

		return nil, err
	}

	// Google-only accounts have no hash and fail here like a wrong password
	if !s.hasher.Verify(password, user.Password) {
		return nil, newError(ErrInvalidCredentials, MsgInvalidCredentials, nil)
	}

	return s.issue(user)
}

// loads the profile of the token subject
func (s *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) || errors.Is(err, users.ErrInvalidID) {
			return nil, newError(ErrNotFound, MsgUserNotFound, err)
		}

		return nil, err
	}

	return &Profile{
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// resolves a verified Google profile to an account, creating or linking
// it as needed, and issues a token
func (s *Service) CompleteGoogleLogin(ctx context.Context, profile GoogleProfile) (*LoginResult, Outcome, error) {
	if profile.ID == "" || profile.Email == "" {
		return nil, 0, newError(ErrAuthenticationFailed, MsgAuthFailed, errors.New("google profile missing id or email"))
	}

	user, outcome, err := s.resolveGoogleUser(ctx, profile)
	if err != nil {
		return nil, 0, newError(ErrAuthenticationFailed, MsgAuthFailed, err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, 0, newError(ErrAuthenticationFailed, MsgAuthFailed, err)
	}

	return result, outcome, nil
}

func (s *Service) resolveGoogleUser(ctx context.Context, profile GoogleProfile) (*users.User, Outcome, error) {
	user, err := s.store.FindByEmailOrGoogleID(ctx, profile.Email, profile.ID)

	switch {
	case errors.Is(err, users.ErrNotFound):
		user = &users.User{
			Name:     profile.Name,
			Email:    profile.Email,
			GoogleID: profile.ID,
			Provider: ProviderGoogle,
			Role:     auth.RoleUser,
		}

		if _, err := s.store.Create(ctx, user); err != nil {
			return nil, 0, err
		}

		return user, OutcomeCreated, nil

	case err != nil:
		return nil, 0, err

	case user.GoogleID == "":
		if err := s.store.LinkGoogleID(ctx, user.ID, profile.ID); err != nil {
			return nil, 0, err
		}

		user.GoogleID = profile.ID
		return user, OutcomeLinked, nil
	}

	return user, OutcomeExisting, nil
}

func (s *Service) issue(user *users.User) (*LoginResult, error) {
	role := user.Role
	if role == "" {
		role = auth.RoleUser
	}

	token, err := s.tokens.Issue(user.IDHex(), user.Email, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID: user.IDHex(),
		Token:  token,
		User: UserSummary{
			Name:  user.Name,
			Email: user.Email,
			Role:  role,
		},
	}, nil
}
