package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/verification"
	apperrors "github.com/orris-inc/helpdesk/internal/shared/errors"
)

// mockUserRepository keeps users in a map; the *Func fields override
// individual methods.
type mockUserRepository struct {
	users  map[uint]*user.User
	nextID uint

	CreateFunc func(ctx context.Context, u *user.User) error
	UpdateFunc func(ctx context.Context, u *user.User) error
	DeleteFunc func(ctx context.Context, id uint) error
	ListFunc   func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)

	updated []*user.User
	deleted []uint
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User), nextID: 100}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	return m.GetByID(ctx, id)
}

func (m *mockUserRepository) GetByIDs(_ context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	m.updated = append(m.updated, u)
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.deleted = append(m.deleted, id)
	delete(m.users, id)
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	var out []*user.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	return err == nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *mockUserRepository) CountByRole(_ context.Context, role vo.Role) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role() == role {
			n++
		}
	}
	return n, nil
}

type mockSessionRepository struct {
	sessions map[string]*user.Session
	deleted  []string
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]*user.Session)}
}

func (m *mockSessionRepository) Create(_ context.Context, s *user.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionRepository) GetByID(_ context.Context, id string) (*user.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, apperrors.NewNotFoundError("session not found")
}

func (m *mockSessionRepository) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionRepository) DeleteByUserID(_ context.Context, userID uint) error {
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }

func (plainHasher) Verify(p, h string) error {
	if h != "h:"+p {
		return errors.New("mismatch")
	}
	return nil
}

type mockVerifier struct {
	IssueFunc func(ctx context.Context, userID uint) (*verification.Token, error)
	SendFunc  func(ctx context.Context, u *user.User, token *verification.Token) error

	issuedFor []uint
	sentTo    []string
}

func (m *mockVerifier) Issue(ctx context.Context, userID uint) (*verification.Token, error) {
	m.issuedFor = append(m.issuedFor, userID)
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, userID)
	}
	return verification.GenerateToken()
}

func (m *mockVerifier) SendVerification(ctx context.Context, u *user.User, token *verification.Token) error {
	m.sentTo = append(m.sentTo, u.Email())
	if m.SendFunc != nil {
		return m.SendFunc(ctx, u, token)
	}
	return nil
}

// fakeTokens encodes "userID:sessionID" as the token.
type fakeTokens struct {
	ttl time.Duration
}

func (f fakeTokens) Generate(userID uint, sessionID string, _ vo.Role) (string, time.Time, error) {
	return fmt.Sprintf("%d:%s", userID, sessionID), time.Now().Add(f.ttl), nil
}

func (f fakeTokens) ParseAccessToken(token string) (uint, string, error) {
	var id uint
	var sid string
	if _, err := fmt.Sscanf(token, "%d:%s", &id, &sid); err != nil {
		return 0, "", err
	}
	return id, sid, nil
}

func (f fakeTokens) AccessTTL() time.Duration { return f.ttl }

// mockTxManager runs fn inline and counts calls.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
