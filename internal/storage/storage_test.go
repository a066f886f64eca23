package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/coretech/stack-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	obj, err := s.Upload(ctx, "stack-tracker_gap-report_Acme-Dental_2026-03-07.txt", "text/plain; charset=utf-8", strings.NewReader("Customer: Acme Dental"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("Customer: Acme Dental")), obj.Size)
	assert.True(t, strings.HasSuffix(obj.Path, "/stack-tracker_gap-report_Acme-Dental_2026-03-07.txt"))

	rc, err := s.Download(ctx, obj.Path)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "Customer: Acme Dental", string(body))

	require.NoError(t, s.Delete(ctx, obj.Path))
	require.NoError(t, s.Delete(ctx, obj.Path), "deleting twice is fine")

	_, err = s.Download(ctx, obj.Path)
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, p := range []string{"", "../secret", "a/../../b", `a\b`} {
		_, err := s.Download(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}
}

func TestObjectPath_SanitizesName(t *testing.T) {
	p := objectPath("../../Acme & Sons (EU).txt")
	parts := strings.Split(p, "/")
	require.Len(t, parts, 2)
	assert.Equal(t, "Acme_Sons_EU_.txt", parts[1])

	assert.True(t, strings.HasSuffix(objectPath("..."), "/export.txt"))
}

func TestNewStorage_Modes(t *testing.T) {
	s, err := NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = NewStorage(&config.StorageConfig{Mode: "azure"}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewStorage(&config.StorageConfig{Mode: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}
