package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mf.log")
	log, closer, err := New(Config{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.WithField("resource", "movie/1").Debug("fetch ok")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", data)
	}
	if entry["msg"] != "fetch ok" || entry["resource"] != "movie/1" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNew_LevelFallback(t *testing.T) {
	log, closer, err := New(Config{Level: "nonsense", File: filepath.Join(t.TempDir(), "x.log")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", log.GetLevel())
	}
}

func TestNew_Stderr(t *testing.T) {
	log, closer, err := New(Config{File: "-"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Out != os.Stderr {
		t.Fatalf("output is not stderr")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
