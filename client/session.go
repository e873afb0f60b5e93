package client

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveSession writes the current session to path so a later process can
// restore the logged-in state. Logged out, it removes the file.
func (c *Client) SaveSession(path string) error {
	if c.session == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear session file: %w", err)
		}
		return nil
	}

	data, err := json.MarshalIndent(c.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// LoadSession restores a previously saved session. A missing file leaves
// the client logged out. The stored token is trusted as-is; no server
// round-trip validates it.
func (c *Client) LoadSession(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("failed to decode session file: %w", err)
	}
	if session.Token != "" {
		c.session = &session
	}
	return nil
}
