package userstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// storeSuite runs the same contract against every Store implementation.
type storeSuite struct {
	suite.Suite
	newStore func(t *testing.T) Store
	store    Store
	ctx      context.Context
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func (s *storeSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *storeSuite) TestCreateAssignsSequentialIDs() {
	first, err := s.store.Create(s.ctx, "maria", "hash-1")
	s.Require().NoError(err)
	second, err := s.store.Create(s.ctx, "joao", "hash-2")
	s.Require().NoError(err)

	s.Equal(int64(1), first.ID)
	s.Equal(int64(2), second.ID)
	s.Equal("maria", first.Username)
	s.Equal("hash-1", first.PasswordHash)
	s.False(first.CreatedAt.IsZero())
}

func (s *storeSuite) TestCreateDuplicateUsername() {
	_, err := s.store.Create(s.ctx, "maria", "hash-1")
	s.Require().NoError(err)

	_, err = s.store.Create(s.ctx, "maria", "hash-2")
	s.True(errors.Is(err, ErrConflict), "expected ErrConflict, got %v", err)
}

func (s *storeSuite) TestGetRoundTrip() {
	created, err := s.store.Create(s.ctx, "ana", "hash")
	s.Require().NoError(err)

	byID, err := s.store.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Username, byID.Username)
	s.Equal(created.CreatedAt.UnixMilli(), byID.CreatedAt.UnixMilli())

	byName, err := s.store.GetByUsername(s.ctx, "ana")
	s.Require().NoError(err)
	s.Equal(created.ID, byName.ID)
}

func (s *storeSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, 42)
	s.True(errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)

	_, err = s.store.GetByUsername(s.ctx, "nobody")
	s.True(errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storeSuite{newStore: func(*testing.T) Store { return NewMemoryStore() }})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &storeSuite{newStore: func(t *testing.T) Store {
		store, err := OpenSQL(context.Background(), NewSQLiteDialect(), ":memory:")
		require.NoError(t, err)
		return store
	}})
}

func TestDialectFor(t *testing.T) {
	cases := map[string]string{
		"sqlite":     "sqlite",
		"SQLite3":    "sqlite",
		"postgres":   "postgres",
		"postgresql": "postgres",
		"mysql":      "mysql",
	}
	for input, driver := range cases {
		d, err := DialectFor(input)
		require.NoError(t, err, input)
		assert.Equal(t, driver, d.DriverName(), input)
	}

	_, err := DialectFor("oracle")
	assert.Error(t, err)
}

func TestRewriteQuery(t *testing.T) {
	query := "SELECT id FROM users WHERE username = ? AND id = ?"
	assert.Equal(t, "SELECT id FROM users WHERE username = $1 AND id = $2", NewPostgresDialect().RewriteQuery(query))
	assert.Equal(t, query, NewSQLiteDialect().RewriteQuery(query))
	assert.Equal(t, query, NewMySQLDialect().RewriteQuery(query))
}

func TestSupportsLastInsertId(t *testing.T) {
	assert.True(t, NewSQLiteDialect().SupportsLastInsertId())
	assert.True(t, NewMySQLDialect().SupportsLastInsertId())
	assert.False(t, NewPostgresDialect().SupportsLastInsertId())
}

func TestIsUniqueViolation_ForeignErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.False(t, NewSQLiteDialect().IsUniqueViolation(plain))
	assert.False(t, NewPostgresDialect().IsUniqueViolation(plain))
	assert.False(t, NewMySQLDialect().IsUniqueViolation(plain))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, "Memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, mem)

	sqlStore, err := Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	assert.IsType(t, &SQLStore{}, sqlStore)
	require.NoError(t, sqlStore.Close())

	_, err = Open(ctx, "oracle", "dsn")
	assert.Error(t, err)
}
