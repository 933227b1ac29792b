package jsoncfg

import (
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Name    string   `json:"name"`
	Timeout Duration `json:"timeout"`
}

func TestSaveOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	saved := testConfig{
		Name:    "test",
		Timeout: Duration(5 * time.Second),
	}
	if err := Save(path, saved); err != nil {
		t.Fatal(err)
	}

	var loaded testConfig
	if err := Open(path, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded != saved {
		t.Errorf("loaded config %+v; want %+v", loaded, saved)
	}
	if loaded.Timeout.Value() != 5*time.Second {
		t.Errorf("Timeout.Value() = %v; want 5s", loaded.Timeout.Value())
	}
}

func TestOpenUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, map[string]any{"name": "test", "bogus": 1}); err != nil {
		t.Fatal(err)
	}

	var loaded testConfig
	if err := Open(path, &loaded); err == nil {
		t.Error("expected error for unknown field")
	}
}
