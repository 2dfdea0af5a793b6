package cache

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Fatalf("NullCache.Get = %v, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "sprite"); hit || err != nil {
		t.Fatalf("empty cache should miss, got hit=%v err=%v", hit, err)
	}
	if err := c.Set(ctx, "sprite", []byte{1, 2, 3}, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "sprite")
	if err != nil || !hit || string(data) != "\x01\x02\x03" {
		t.Fatalf("Get = %v, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "sprite"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "sprite"); hit {
		t.Fatal("deleted entry should miss")
	}
	if err := c.Delete(ctx, "sprite"); err != nil {
		t.Fatalf("deleting a missing key should succeed: %v", err)
	}
}

func TestFileCacheExpiryAndCorruption(t *testing.T) {
	ctx := context.Background()
	raw, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := raw.(*FileCache)

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Fatal("expired entry should miss")
	}

	if err := c.Set(ctx, "bad", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := os.WriteFile(c.path("bad"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Fatalf("corrupt entry should be a silent miss, got hit=%v err=%v", hit, err)
	}
}

func TestKey(t *testing.T) {
	k1 := Key("sprite", "robot", int64(7), 4)
	k2 := Key("sprite", "robot", int64(7), 4)
	k3 := Key("sprite", "robot", int64(8), 4)
	if k1 != k2 {
		t.Fatal("Key should be deterministic")
	}
	if k1 == k3 {
		t.Fatal("different parts should produce different keys")
	}
	if len(k1) != len("sprite:")+64 {
		t.Fatalf("unexpected key length %d", len(k1))
	}
}

func TestRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	if err == nil {
		t.Fatal("expected connection error for unreachable redis")
	}

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	c := NewRedisCacheFromClient(client, "")
	defer c.Close()
	if c.prefix != "spritegen:" {
		t.Fatalf("default prefix = %q", c.prefix)
	}
	if _, hit, err := c.Get(ctx, "k"); err == nil || hit {
		t.Fatalf("Get on unreachable redis = hit=%v err=%v", hit, err)
	}
}

func TestFileCacheLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	for _, key := range []string{"a", "b", "a"} {
		if err := c.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatalf("Set(%q): %v", key, err)
		}
	}
	var entries []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			entries = append(entries, filepath.Base(path))
		}
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("cache dir holds %v, want two entries", entries)
	}
	for _, name := range entries {
		if filepath.Ext(name) != ".json" {
			t.Fatalf("stray file %q left behind", name)
		}
	}
}
