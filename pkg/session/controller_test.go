package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"coursepulse/pkg/utils"
)

func newTestController(t *testing.T) (*Controller, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewController(NewFileStore(path)), path
}

func TestResumeWithoutSnapshot(t *testing.T) {
	ctrl, _ := newTestController(t)

	require.Equal(t, StateLoading, ctrl.State())
	require.Equal(t, StateAnonymous, ctrl.Resume())
	require.Empty(t, ctrl.Token())
}

func TestLoginPersistsAcrossRestart(t *testing.T) {
	ctrl, path := newTestController(t)
	ctrl.Resume()

	user := UserProfile{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: "student"}
	require.NoError(t, ctrl.OnLogin("tok-123", user))
	require.Equal(t, StateAuthenticated, ctrl.State())
	require.Equal(t, "tok-123", ctrl.Token())

	// A fresh controller over the same store resumes authenticated.
	restarted := NewController(NewFileStore(path))
	require.Equal(t, StateAuthenticated, restarted.Resume())
	got, ok := restarted.User()
	require.True(t, ok)
	require.Equal(t, user, got)
}

func TestCorruptSnapshotResumesAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	ctrl := NewController(NewFileStore(path))
	require.Equal(t, StateAnonymous, ctrl.Resume())
}

func TestUnauthenticatedErrorDropsSession(t *testing.T) {
	ctrl, path := newTestController(t)
	ctrl.Resume()
	require.NoError(t, ctrl.OnLogin("tok-123", UserProfile{ID: "u1"}))

	dest := ctrl.HandleAuthError(utils.CodeInvalidToken, "")
	require.Equal(t, PathLogin, dest)
	require.Equal(t, StateAnonymous, ctrl.State())
	require.Empty(t, ctrl.Token())

	// The stored snapshot is gone too.
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestBlockedIsTerminal(t *testing.T) {
	ctrl, path := newTestController(t)
	ctrl.Resume()
	require.NoError(t, ctrl.OnLogin("tok-123", UserProfile{ID: "u1", Email: "alice@example.com"}))

	dest := ctrl.HandleAuthError(utils.CodeAccountBlocked, "alice@example.com")
	require.Equal(t, PathBlocked, dest)
	require.Equal(t, StateBlocked, ctrl.State())
	require.Empty(t, ctrl.Token())

	marker, ok := ctrl.BlockedInfo()
	require.True(t, ok)
	require.Equal(t, "alice@example.com", marker.Email)
	require.Equal(t, utils.BlockedAccountMessage, marker.Message)

	// Further auth errors and logins cannot leave the blocked state.
	require.Equal(t, PathBlocked, ctrl.HandleAuthError(utils.CodeInvalidToken, ""))
	require.NoError(t, ctrl.OnLogin("tok-456", UserProfile{ID: "u2"}))
	require.Equal(t, StateBlocked, ctrl.State())

	// And it survives a restart.
	restarted := NewController(NewFileStore(path))
	require.Equal(t, StateBlocked, restarted.Resume())

	// Logout is the only exit.
	require.NoError(t, ctrl.Logout())
	require.Equal(t, StateAnonymous, ctrl.State())
}

func TestInsufficientPrivilegeKeepsSession(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Resume()
	require.NoError(t, ctrl.OnLogin("tok-123", UserProfile{ID: "u1"}))

	dest := ctrl.HandleAuthError(utils.CodeInsufficientPrivilege, "")
	require.Equal(t, PathUnauthorized, dest)
	require.Equal(t, StateAuthenticated, ctrl.State())
	require.Equal(t, "tok-123", ctrl.Token())
}

func TestUnknownErrorCodeIsIgnored(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Resume()
	require.NoError(t, ctrl.OnLogin("tok-123", UserProfile{ID: "u1"}))

	require.Empty(t, ctrl.HandleAuthError(utils.CodeInternalError, ""))
	require.Equal(t, StateAuthenticated, ctrl.State())
}
