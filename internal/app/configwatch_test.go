package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbar.yaml")
	if err := os.WriteFile(path, []byte("port: 8080\n"), FilePerm); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads, err := WatchConfig(ctx, path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), FilePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("port: 8081\n"), FilePerm); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case r := <-reloads:
			// A write can be observed mid-truncate; wait for the final content.
			if r.Err == nil && r.Config.Port == 8081 {
				cancel()
				for range reloads {
				}
				return
			}
		case <-timeout:
			t.Fatal("no reload with port 8081 before timeout")
		}
	}
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	_, err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "nope", "toolbar.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
