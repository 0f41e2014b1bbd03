package identity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"codeberg.org/bookhub/server/bookhub/users"
	"codeberg.org/bookhub/server/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// in-memory UserStore mirroring the repository's error contract
type memoryStore struct {
	mu      sync.Mutex
	users   []*users.User
	failAll error
}

func (m *memoryStore) Create(_ context.Context, user *users.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAll != nil {
		return "", m.failAll
	}

	for _, u := range m.users {
		if u.Email == user.Email {
			return "", users.ErrEmailTaken
		}
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	stored := *user
	m.users = append(m.users, &stored)

	return user.ID.Hex(), nil
}

func (m *memoryStore) FindByID(_ context.Context, id string) (*users.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, users.ErrInvalidID
	}

	return m.find(func(u *users.User) bool { return u.ID == oid })
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (*users.User, error) {
	return m.find(func(u *users.User) bool { return u.Email == email })
}

func (m *memoryStore) FindByEmailOrGoogleID(_ context.Context, email, googleID string) (*users.User, error) {
	return m.find(func(u *users.User) bool {
		return u.Email == email || (u.GoogleID != "" && u.GoogleID == googleID)
	})
}

func (m *memoryStore) LinkGoogleID(_ context.Context, id primitive.ObjectID, googleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAll != nil {
		return m.failAll
	}

	for _, u := range m.users {
		if u.ID == id {
			now := time.Now().UTC()
			u.GoogleID = googleID
			u.UpdatedAt = &now
			return nil
		}
	}

	return users.ErrNotFound
}

func (m *memoryStore) find(match func(*users.User) bool) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAll != nil {
		return nil, m.failAll
	}

	for _, u := range m.users {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}

	return nil, users.ErrNotFound
}

func (m *memoryStore) countByEmail(email string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, u := range m.users {
		if u.Email == email {
			n++
		}
	}

	return n
}

type fixture struct {
	store   *memoryStore
	tokens  *auth.TokenService
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewTokenService("identity-test-secret")
	require.NoError(t, err)

	store := &memoryStore{}

	return &fixture{
		store:   store,
		tokens:  tokens,
		service: NewService(store, auth.NewPasswordHasher(bcrypt.MinCost), tokens),
	}
}

func TestRegisterThenLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.service.Register(ctx, Registration{Name: "Jane", Email: "jane@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	result, err := f.service.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)

	claims, err := f.tokens.Verify(result.Token)
	require.NoError(t, err)

	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, auth.RoleUser, claims.Role)
	assert.Equal(t, UserSummary{Name: "Jane", Email: "jane@x.com", Role: "user"}, result.User)

	profile, err := f.service.Profile(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.Name)
	assert.Equal(t, "user", profile.Role)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Register(context.Background(), Registration{Name: "Jane", Email: "jane@x.com", Password: "secret1"})
	require.NoError(t, err)

	stored, err := f.store.FindByEmail(context.Background(), "jane@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, Registration{Name: "Jane", Email: "jane@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.service.Register(ctx, Registration{Name: "Other", Email: "jane@x.com", Password: "secret2"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, f.store.countByEmail("jane@x.com"))

	var ie *Error
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, MsgUserExists, ie.Message)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []Registration{
		{Email: "jane@x.com", Password: "secret1"},
		{Name: "Jane", Password: "secret1"},
		{Name: "Jane", Email: "jane@x.com"},
		{Name: "   ", Email: "jane@x.com", Password: "secret1"},
	}

	for _, reg := range cases {
		_, err := f.service.Register(ctx, reg)
		assert.ErrorIs(t, err, ErrValidation, "registration %+v", reg)
	}
}

func TestRegister_Role(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, Registration{Name: "Root", Email: "root@x.com", Password: "pw", Role: "superuser"})
	require.ErrorIs(t, err, ErrValidation)

	var ie *Error
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, MsgInvalidRole, ie.Message)

	_, err = f.service.Register(ctx, Registration{Name: "Root", Email: "root@x.com", Password: "pw", Role: "admin"})
	require.NoError(t, err)

	stored, err := f.store.FindByEmail(ctx, "root@x.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", stored.Role)
}

func TestLogin_IdenticalFailureMessages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, Registration{Name: "Jane", Email: "jane@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := f.service.Login(ctx, "jane@x.com", "wrong")
	_, unknownEmail := f.service.Login(ctx, "nobody@x.com", "secret1")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)

	var a, b *Error
	require.True(t, errors.As(wrongPassword, &a))
	require.True(t, errors.As(unknownEmail, &b))

	assert.Equal(t, "Invalid email or password.", a.Message)
	assert.Equal(t, a.Message, b.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Login(context.Background(), "", "secret1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.service.Login(context.Background(), "jane@x.com", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_GoogleOnlyAccountHasNoPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.service.CompleteGoogleLogin(ctx, GoogleProfile{ID: "g-1", Email: "g@x.com", Name: "G"})
	require.NoError(t, err)

	_, err = f.service.Login(ctx, "g@x.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.failAll = errors.New("connection refused")

	_, err := f.service.Login(context.Background(), "jane@x.com", "secret1")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestProfile_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Profile(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.Profile(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteGoogleLogin_CreatesNewUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, outcome, err := f.service.CompleteGoogleLogin(ctx, GoogleProfile{ID: "g-1", Email: "new@x.com", Name: "New"})

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, outcome)
	assert.Equal(t, UserSummary{Name: "New", Email: "new@x.com", Role: "user"}, result.User)

	stored, err := f.store.FindByEmail(ctx, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, "g-1", stored.GoogleID)
	assert.Equal(t, ProviderGoogle, stored.Provider)
	assert.Empty(t, stored.Password)

	claims, err := f.tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.Hex(), claims.UserID)
}

func TestCompleteGoogleLogin_LinksExistingLocalAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	localID, err := f.service.Register(ctx, Registration{Name: "Jane", Email: "jane@x.com", Password: "secret1"})
	require.NoError(t, err)

	first, outcome, err := f.service.CompleteGoogleLogin(ctx, GoogleProfile{ID: "g-jane", Email: "jane@x.com", Name: "Jane G"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeLinked, outcome)
	assert.Equal(t, localID, first.UserID)
	assert.Equal(t, 1, f.store.countByEmail("jane@x.com"))

	stored, err := f.store.FindByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "g-jane", stored.GoogleID)
	assert.NotNil(t, stored.UpdatedAt)

	second, outcome, err := f.service.CompleteGoogleLogin(ctx, GoogleProfile{ID: "g-jane", Email: "jane@x.com", Name: "Jane G"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeExisting, outcome)
	assert.Equal(t, localID, second.UserID)
	assert.Equal(t, 1, f.store.countByEmail("jane@x.com"))

	// the password still works after linking
	_, err = f.service.Login(ctx, "jane@x.com", "secret1")
	assert.NoError(t, err)
}

func TestCompleteGoogleLogin_MatchesByGoogleIDAfterEmailChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, _, err := f.service.CompleteGoogleLogin(ctx, GoogleProfile{ID: "g-1", Email: "old@x.com", Name: "A"})
	require.NoError(t, err)

	second, outcome, err := f.service.CompleteGoogleLogin(ctx, GoogleProfile{ID: "g-1", Email: "renamed@x.com", Name: "A"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeExisting, outcome)
	assert.Equal(t, first.UserID, second.UserID)
}

func TestCompleteGoogleLogin_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.failAll = errors.New("server selection timeout")

	_, _, err := f.service.CompleteGoogleLogin(context.Background(), GoogleProfile{ID: "g-1", Email: "a@x.com", Name: "A"})

	require.ErrorIs(t, err, ErrAuthenticationFailed)

	var ie *Error
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, MsgAuthFailed, ie.Message)
}

func TestCompleteGoogleLogin_IncompleteProfile(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.service.CompleteGoogleLogin(context.Background(), GoogleProfile{ID: "g-1"})
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Empty(t, f.store.users)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "created", OutcomeCreated.String())
	assert.Equal(t, "linked", OutcomeLinked.String())
	assert.Equal(t, "existing", OutcomeExisting.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
