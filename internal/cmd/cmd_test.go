package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/testrunner/toolbar/internal/app"
)

// runRoot executes the root command and returns the ExitResult it produced.
func runRoot(t *testing.T, args ...string) app.ExitResult {
	t.Helper()
	root := NewRoot()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return app.ExitResult{}
	}
	var exit app.ExitResult
	if !errors.As(err, &exit) {
		t.Fatalf("unexpected error type %T: %v", err, err)
	}
	return exit
}

func TestResolveCmd(t *testing.T) {
	res := runRoot(t, "resolve", "foo/bar")
	if res.Code != 0 || res.Message != "http://foo/bar" {
		t.Errorf("got %+v", res)
	}

	res = runRoot(t, "resolve", "/path", "--base", "http://localhost:3000")
	if res.Message != "http://localhost:3000/path" {
		t.Errorf("got %+v", res)
	}

	res = runRoot(t, "resolve", "x.test", "-F", "json")
	if !strings.Contains(res.Message, `"url": "http://x.test"`) {
		t.Errorf("got %q", res.Message)
	}
}

func TestOriginCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbar.yaml")
	if err := os.WriteFile(path, []byte("port: 3000\npageUrl: http://localhost:3000/\n"), app.FilePerm); err != nil {
		t.Fatal(err)
	}

	res := runRoot(t, "origin", "-c", path)
	if res.Code != 0 || res.Message != "" {
		t.Errorf("same port should print nothing, got %+v", res)
	}

	res = runRoot(t, "origin", "-c", path, "--page", "http://localhost:8080/__/")
	if res.Message != "http://localhost:8080" {
		t.Errorf("got %+v", res)
	}

	res = runRoot(t, "origin", "-c", path, "--page", "http://example.com/", "--port", "80", "--strict-port")
	if res.Message != "http://example.com" {
		t.Errorf("strict port should not match an implicit port, got %+v", res)
	}
}

func TestConfigValidateCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(good, []byte("port: 8080\n"), app.FilePerm)
	os.WriteFile(bad, []byte("port: nope\n"), app.FilePerm)

	if res := runRoot(t, "config", "validate", good); res.Code != 0 {
		t.Errorf("good config: %+v", res)
	}
	if res := runRoot(t, "config", "validate", bad); res.Code != 1 || !res.ToStderr {
		t.Errorf("bad config: %+v", res)
	}
}

func TestConfigShowCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbar.json")
	os.WriteFile(path, []byte(`{"port": 4100}`), app.FilePerm)

	res := runRoot(t, "config", "show", "-c", path, "-F", "json")
	if !strings.Contains(res.Message, `"port": 4100`) || !strings.Contains(res.Message, `"configFile": "toolbar.json"`) {
		t.Errorf("got %q", res.Message)
	}
}
