package app

import (
	"testing"

	"github.com/dori/fokus/internal/config"
	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/store"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DataDir:       t.TempDir(),
		WorkMinutes:   25,
		BreakMinutes:  5,
		Notifications: false,
	}
}

func TestStatePersistsAcrossRestarts(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Store.Dispatch(store.CreateProject{Project: model.Project{
		ID: "p1", Name: "Home", Columns: model.DefaultColumns(),
	}})
	a.Store.Dispatch(store.AddTask{Task: model.Task{Title: "water plants"}})
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New after restart: %v", err)
	}
	defer b.Close()

	st := b.Store.State()
	if len(st.Projects) != 1 || st.Projects[0].Name != "Home" {
		t.Fatalf("projects = %+v", st.Projects)
	}
	if st.ActiveProjectID != "p1" {
		t.Fatalf("active project = %q", st.ActiveProjectID)
	}
	if len(st.ActiveTasks()) != 1 {
		t.Fatalf("tasks = %+v", st.ActiveTasks())
	}
}

func TestSecondInstanceRefused(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if _, err := New(cfg); err == nil {
		t.Fatal("expected second instance to fail the lock")
	}
}
