package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	sgerrors "spritegen/pkg/errors"
)

// FileCache keeps rendered sprites on disk, one JSON envelope per key under
// dir/<hash[:2]>/<hash[2:]>.json. Writes go through a temp file and a rename
// so concurrent requests never read a partial PNG.
type FileCache struct {
	dir string
}

// NewFileCache returns a FileCache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "create cache dir %s", dir)
	}
	return &FileCache{dir: dir}, nil
}

type envelope struct {
	Sprite  []byte    `json:"sprite"`
	Expires time.Time `json:"expires,omitzero"`
}

func (e envelope) expired(now time.Time) bool {
	return !e.Expires.IsZero() && now.After(e.Expires)
}

// Get reads key. Unreadable or expired envelopes are removed and reported as
// misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "read cached sprite")
	}

	var env envelope
	if json.Unmarshal(raw, &env) != nil || env.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return env.Sprite, true, nil
}

// Set writes data under key; ttl <= 0 keeps it until deleted.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	env := envelope{Sprite: data}
	if ttl > 0 {
		env.Expires = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "encode cache entry")
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "create cache shard")
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "create cache entry")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "write cache entry")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "write cache entry")
	}
	return os.Rename(tmp.Name(), path)
}

// Delete drops key; a missing entry is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Close is a no-op; entries live on disk.
func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}
