package tokenstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mveldre/rentahouse/internal/logging"
)

// fakeRepo implements settings.Repository in memory with injectable errors.
type fakeRepo struct {
	values map[string]string

	getErr    error
	setErr    error
	deleteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{values: map[string]string{}}
}

func (f *fakeRepo) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.values[key], nil
}

func (f *fakeRepo) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.values, key)
	return nil
}

func TestStore_Roundtrip(t *testing.T) {
	s := New(newFakeRepo(), logging.NewNopLogger())
	ctx := context.Background()

	_, ok := s.Get(ctx)
	require.False(t, ok)

	s.Set(ctx, "tok-1")
	token, ok := s.Get(ctx)
	require.True(t, ok)
	require.Equal(t, "tok-1", token)

	s.Set(ctx, "tok-2")
	token, ok = s.Get(ctx)
	require.True(t, ok)
	require.Equal(t, "tok-2", token, "set overwrites the previous credential")
}

func TestStore_RemoveIdempotent(t *testing.T) {
	s := New(newFakeRepo(), logging.NewNopLogger())
	ctx := context.Background()

	s.Set(ctx, "tok")
	s.Remove(ctx)
	_, ok := s.Get(ctx)
	require.False(t, ok)

	// removing again must leave the store absent without error
	s.Remove(ctx)
	_, ok = s.Get(ctx)
	require.False(t, ok)
}

func TestStore_ReadErrorReadsAsAbsent(t *testing.T) {
	repo := newFakeRepo()
	repo.values[tokenKey] = "tok"
	repo.getErr = errors.New("disk on fire")

	s := New(repo, logging.NewNopLogger())
	token, ok := s.Get(context.Background())
	require.False(t, ok)
	require.Equal(t, "", token)
}

func TestStore_WriteAndDeleteErrorsAreSwallowed(t *testing.T) {
	repo := newFakeRepo()
	repo.setErr = errors.New("readonly fs")
	repo.deleteErr = errors.New("readonly fs")

	s := New(repo, logging.NewNopLogger())
	ctx := context.Background()

	// must not panic or surface errors
	s.Set(ctx, "tok")
	s.Remove(ctx)

	_, ok := s.Get(ctx)
	require.False(t, ok)
}
