package client

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Storage is a durable key/value store for client auth state, the analogue
// of the browser's localStorage.
type Storage interface {
	// Get returns the stored value for key and whether it was present
	Get(key string) (string, bool)
	// Set stores a value under key
	Set(key, value string) error
	// Delete removes a key; deleting a missing key is not an error
	Delete(key string) error
}

// FileStore is a Storage backed by a JSON file on disk
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileStore opens (or creates) a file-backed store at path. A file that
// cannot be parsed is treated as empty rather than failing, so a corrupt
// store never blocks startup.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path: path,
		data: map[string]string{},
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := json.Unmarshal(raw, &fs.data); err != nil {
		fs.data = map[string]string{}
	}

	return fs, nil
}

// Get returns the stored value for key
func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	value, ok := fs.data[key]
	return value, ok
}

// Set stores a value and flushes the file
func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = value
	return fs.flush()
}

// Delete removes a key and flushes the file
func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.data, key)
	return fs.flush()
}

func (fs *FileStore) flush() error {
	raw, err := json.Marshal(fs.data)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.WriteFile(fs.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Storage, mainly for tests
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

// Get returns the stored value for key
func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	value, ok := ms.data[key]
	return value, ok
}

// Set stores a value under key
func (ms *MemoryStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.data[key] = value
	return nil
}

// Delete removes a key
func (ms *MemoryStore) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.data, key)
	return nil
}
