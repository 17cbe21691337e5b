package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/dori/fokus/internal/config"
	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/notify"
	"github.com/dori/fokus/internal/session"
	"github.com/dori/fokus/internal/storage"
	"github.com/dori/fokus/internal/store"
)

// App wires the store, persistence, session timer and notifier
// together and owns their lifecycle.
type App struct {
	Config   config.Config
	Store    *store.Store
	Session  *session.Coordinator
	Notifier *notify.Notifier
	Logger   *log.Logger

	storage  *storage.Adapter
	lockFile *flock.Flock
	logFile  *os.File
}

// New builds the application: data directory, single-instance lock,
// logfile, persisted state and the session coordinator. The returned
// app's store already holds the last saved state.
func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{
		Config:   cfg,
		Notifier: notify.New(cfg.Notifications),
	}

	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "fokus.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = logFile
	a.Logger = log.New(logFile, "", log.LstdFlags)

	a.storage = storage.Open(filepath.Join(cfg.DataDir, "state"), a.Logger)
	a.Store = store.New(store.WithPersist(func(st model.AppState) {
		a.storage.Save(storage.StateKey, st)
	}))
	if snap := a.storage.Load(storage.StateKey); snap != nil {
		a.Store.Dispatch(store.LoadState{Snapshot: *snap})
	}

	a.Session = session.New(a.Store, a.Notifier, cfg.WorkDuration(), cfg.BreakDuration())

	a.remindDueTasks(time.Now())

	return a, nil
}

// remindDueTasks sends one reminder per overdue or due-today task in
// the active project. Best effort; a dead notifier is fine.
func (a *App) remindDueTasks(now time.Time) {
	for _, t := range a.Store.State().ActiveTasks() {
		if t.IsDone() || t.DueDate == "" {
			continue
		}
		due, err := time.ParseInLocation(model.DateLayout, t.DueDate, now.Location())
		if err != nil {
			continue
		}
		// due dates are day-granular; treat end of day as the deadline
		deadline := due.AddDate(0, 0, 1)
		if deadline.Sub(now) < 24*time.Hour {
			a.Notifier.DueReminder(t.Title, deadline.Sub(now))
		}
	}
}

// acquireLock takes an exclusive file lock so only one instance writes
// the state blob.
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.Config.DataDir, "fokus.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of fokus is already running")
	}

	return nil
}

func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close releases the instance lock and the logfile.
func (a *App) Close() error {
	a.releaseLock()
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
