package config

import (
	"errors"
	"strings"
)

// ErrMissingRPCPassword is returned when no RPC password is configured.
var ErrMissingRPCPassword = errors.New("RPC_PASSWORD environment variable must be set")

var weakPasswords = []string{"password", "admin", "changeme", "miner", "minerpass", "123456", "opensy"}

// Validate checks the credentials needed before talking to the node.
func (c RPCConfig) Validate() error {
	if c.Password == "" {
		return ErrMissingRPCPassword
	}
	return nil
}

// WeakPassword reports whether the configured password contains a well-known
// weak value (case-insensitive), and which one.
func (c RPCConfig) WeakPassword() (string, bool) {
	pw := strings.ToLower(c.Password)
	for _, weak := range weakPasswords {
		if strings.Contains(pw, weak) {
			return weak, true
		}
	}
	return "", false
}
