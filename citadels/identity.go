package citadels

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Identity is the client-local identity: a generated opaque player id plus a
// user-chosen display name. Both are persisted and resent verbatim on every
// join and rejoin, so the server re-attaches the same participant.
type Identity struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

const identityFile = "identity.json"

// IdentityStore persists the identity as a single JSON file.
type IdentityStore struct {
	path string
}

// NewIdentityStore creates a store rooted at dir. An empty dir resolves to
// a "citadels" directory under the user config dir.
func NewIdentityStore(dir string) (*IdentityStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, WrapError(ErrorInvalidConfig, "resolve config dir", err)
		}
		dir = filepath.Join(base, "citadels")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, WrapError(ErrorInvalidConfig, "create identity dir", err)
	}
	return &IdentityStore{path: filepath.Join(dir, identityFile)}, nil
}

// Load returns the persisted identity, generating and persisting a fresh
// player id on first run.
func (s *IdentityStore) Load() (Identity, error) {
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		id := Identity{PlayerID: newPlayerID()}
		if err := s.Save(id); err != nil {
			return Identity{}, err
		}
		return id, nil
	case err != nil:
		return Identity{}, WrapError(ErrorUnknown, "read identity", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return Identity{}, WrapError(ErrorDecode, "decode identity", err)
	}
	if id.PlayerID == "" {
		id.PlayerID = newPlayerID()
		if err := s.Save(id); err != nil {
			return Identity{}, err
		}
	}
	return id, nil
}

// Save persists the identity.
func (s *IdentityStore) Save(id Identity) error {
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return WrapError(ErrorSerialization, "encode identity", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return WrapError(ErrorUnknown, "write identity", err)
	}
	return nil
}

func newPlayerID() string {
	return "p_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
