package cache

import (
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Kind string
	Line int
}

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vigil.cache")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	c.Put("digest-a", []record{{Kind: "unbounded_loops", Line: 3}})
	if err := c.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var got []record
	if !reopened.Get("digest-a", &got) {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Kind != "unbounded_loops" || got[0].Line != 3 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if reopened.Get("digest-b", &got) {
		t.Fatal("unexpected hit for unknown digest")
	}
}

func TestCacheIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vigil.cache")
	if err := os.WriteFile(path, []byte("not msgpack"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if c.Len() != 0 {
		t.Fatal("corrupt cache should start empty")
	}
}

func TestCacheSaveSkipsWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vigil.cache")
	c, _ := Open(path)
	if err := c.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("clean cache should not be written")
	}
}
