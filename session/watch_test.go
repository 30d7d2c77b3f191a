package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReactsToWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "traj.dat")
	if err := os.WriteFile(path, []byte("1\n2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	errc := make(chan error, 1)
	go func() {
		errc <- Watch(ctx, path, 20*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.dat"), []byte("9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("1\n2\n3\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(100 * time.Millisecond)
	if n := len(changed); n != 0 {
		t.Errorf("%d extra change notifications, want the burst coalesced", n)
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "traj.dat")
	if err := Watch(context.Background(), path, time.Millisecond, func() {}); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
