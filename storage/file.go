package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps each key in its own JSON file under a data directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *FileStore) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

// sanitizeKey keeps keys filesystem-safe; store keys are of the form
// "cart:<client-id>" and client ids are UUIDs or emails. Every byte
// outside [a-zA-Z0-9.-] is escaped as "_" plus its hex value, the escape
// byte included, so distinct keys never share a file.
func sanitizeKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "_%02x", c)
		}
	}
	return b.String()
}
