package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService holds the client-side key handling of the replica. It knows
// nothing about the network or the database.
//
// Key hierarchy:
//
//	UserKey  = DeriveUserKey(password, salt)          Argon2id, never leaves memory
//	ShareKey = OpenShareKey(wrapped, UserKey)         AES-256-GCM, one per rotation
//
// Items stay encrypted at rest with their share keys; the sync loop only has
// to prove that it can open the latest share key after a rotation.
type KeyChainService interface {
	// DeriveUserKey derives the 256-bit user key from the master password and
	// salt with Argon2id.
	DeriveUserKey(masterPassword string, salt []byte) []byte

	// GenerateShareKey returns 32 random bytes.
	GenerateShareKey() ([]byte, error)

	// SealShareKey wraps shareKey with userKey and returns
	// base64(nonce || ciphertext).
	SealShareKey(shareKey, userKey []byte) (string, error)

	// OpenShareKey unwraps a key produced by SealShareKey. An error almost
	// always means a wrong user key or a corrupted blob.
	OpenShareKey(wrappedB64 string, userKey []byte) ([]byte, error)
}
