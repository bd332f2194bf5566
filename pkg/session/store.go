package session

import (
	"encoding/json"
	"errors"
	"os"
)

// UserProfile is the client-side snapshot of the logged-in user.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// BlockedMarker renders the blocked-account page. It is not authoritative;
// the server's blocked flag is.
type BlockedMarker struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Snapshot struct {
	Token   string         `json:"token,omitempty"`
	User    *UserProfile   `json:"user,omitempty"`
	Blocked *BlockedMarker `json:"blocked_user,omitempty"`
}

// Store persists the session snapshot between runs, the way a browser keeps
// it in local storage.
type Store interface {
	Load() (Snapshot, error)
	Save(snap Snapshot) error
	Clear() error
}

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt snapshot is treated as no session at all.
		return Snapshot{}, nil
	}
	return snap, nil
}

func (s *FileStore) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
