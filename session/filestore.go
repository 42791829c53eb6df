package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/homemanager/hmctl/internal/errors"
)

const credentialsFileName = "credentials.json"

// FileStore persists session state as a JSON object in a single file
// under the data directory. The file is created with 0600 permissions
// since it holds bearer credentials.
type FileStore struct {
	path string
	lock sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file-backed store rooted at dir. The directory
// is created if missing.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "[NewFileStore] mkdir %s", dir)
	}
	return &FileStore{path: filepath.Join(dir, credentialsFileName)}, nil
}

func (fs *FileStore) Get(key string) (string, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, err := fs.read()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, err := fs.read()
	if err != nil {
		return err
	}
	values[key] = value
	return fs.write(values)
}

func (fs *FileStore) Delete(key string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, err := fs.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return fs.write(values)
}

// read loads the credentials file. A missing file means no session.
func (fs *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[FileStore] read %s", fs.path)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		// A corrupt credentials file is equivalent to no session.
		return map[string]string{}, nil
	}
	return values, nil
}

func (fs *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "[FileStore] marshal")
	}
	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "[FileStore] write %s", fs.path)
	}
	return nil
}
