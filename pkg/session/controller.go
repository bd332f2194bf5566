package session

import (
	"sync"

	"coursepulse/pkg/utils"
)

// State is the client session lifecycle state.
type State string

const (
	StateLoading       State = "loading"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
	StateBlocked       State = "blocked"
)

// Redirect destinations returned by HandleAuthError.
const (
	PathLogin        = "/login"
	PathBlocked      = "/blocked"
	PathUnauthorized = "/unauthorized"
)

// Controller tracks the client's view of its authentication state. It starts
// in StateLoading until Resume replays the persisted snapshot. StateBlocked
// is terminal; only Logout leaves it.
type Controller struct {
	mu    sync.Mutex
	state State
	snap  Snapshot
	store Store
}

func NewController(store Store) *Controller {
	return &Controller{state: StateLoading, store: store}
}

// Resume loads the persisted snapshot and settles the initial state. A
// snapshot with a token and user resumes as authenticated; a blocked marker
// resumes as blocked; anything else is anonymous.
func (c *Controller) Resume() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.store.Load()
	if err != nil {
		c.state = StateAnonymous
		return c.state
	}

	c.snap = snap
	switch {
	case snap.Blocked != nil:
		c.state = StateBlocked
	case snap.Token != "" && snap.User != nil:
		c.state = StateAuthenticated
	default:
		c.snap = Snapshot{}
		c.state = StateAnonymous
	}
	return c.state
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Token returns the bearer token to attach to requests, empty unless
// authenticated.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return ""
	}
	return c.snap.Token
}

func (c *Controller) User() (UserProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated || c.snap.User == nil {
		return UserProfile{}, false
	}
	return *c.snap.User, true
}

func (c *Controller) BlockedInfo() (BlockedMarker, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateBlocked || c.snap.Blocked == nil {
		return BlockedMarker{}, false
	}
	return *c.snap.Blocked, true
}

// OnLogin records a successful login and persists the snapshot. It is
// ignored while blocked.
func (c *Controller) OnLogin(token string, user UserProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateBlocked {
		return nil
	}

	c.snap = Snapshot{Token: token, User: &user}
	c.state = StateAuthenticated
	return c.store.Save(c.snap)
}

// Logout clears the persisted snapshot and returns to anonymous. This is the
// only way out of StateBlocked.
func (c *Controller) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snap = Snapshot{}
	c.state = StateAnonymous
	return c.store.Clear()
}

// HandleAuthError applies a server auth failure, keyed by its error code, and
// returns the path the client should navigate to ("" means stay put).
//
// 401 codes drop the session and return to anonymous. A blocked-account
// rejection moves to StateBlocked and persists a marker so the blocked page
// survives a restart. An insufficient-privilege rejection leaves the session
// intact.
func (c *Controller) HandleAuthError(errorCode, email string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateBlocked {
		return PathBlocked
	}

	switch errorCode {
	case utils.CodeUnauthenticated, utils.CodeInvalidToken:
		c.snap = Snapshot{}
		c.state = StateAnonymous
		_ = c.store.Clear()
		return PathLogin
	case utils.CodeAccountBlocked:
		c.snap = Snapshot{Blocked: &BlockedMarker{
			Email:   email,
			Message: utils.BlockedAccountMessage,
		}}
		c.state = StateBlocked
		_ = c.store.Save(c.snap)
		return PathBlocked
	case utils.CodeInsufficientPrivilege:
		return PathUnauthorized
	}
	return ""
}
