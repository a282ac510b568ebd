package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockManager struct {
	mock.Mock
}

func (m *MockManager) FormatAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// makeWorkspace creates files relative to dir, each with placeholder C source.
func makeWorkspace(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("int  main( void ){return 0;}\n"), 0o600))
	}
}
