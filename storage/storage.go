// Package storage provides the durable key-value capability behind the
// cart, wishlist and session stores. It is the server-side counterpart of
// the browser's localStorage: small JSON blobs under string keys, written
// synchronously on every mutation.
package storage

type Store interface {
	Save(key string, value []byte) error

	// Load returns the stored value and whether the key exists. An absent
	// key is not an error.
	Load(key string) ([]byte, bool, error)

	Delete(key string) error
}
