package service

import "errors"

var (
	// ErrUserKeyNotSet is returned by [ShareKeysService] before SetUserKey.
	ErrUserKeyNotSet = errors.New("user key is not set")

	// ErrNoShareKeys is returned when the server holds no key for a share.
	ErrNoShareKeys = errors.New("server returned no keys for share")

	// ErrShareKeyUndecryptable is returned when a share key cannot be opened
	// with the user key (wrong master password or corrupted key).
	ErrShareKeyUndecryptable = errors.New("share key cannot be decrypted with user key")

	ErrSessionExpired     = errors.New("session expired or token is invalid")
	ErrShareAccessRevoked = errors.New("access to share was revoked")
	ErrShareNotFound      = errors.New("share not found on server")
	ErrServerUnavailable  = errors.New("server is unavailable")
)
