// Package storage persists the whole application state as one JSON blob
// under a single key in a disk-backed key-value store. Failures never
// escape: a corrupt, missing or unwritable blob is logged and treated as
// no state at all, so the store keeps working in memory.
package storage

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/dori/fokus/internal/model"
)

// StateKey is the key the application state blob lives under.
const StateKey = "state"

// Adapter wraps the key-value store with the load/save contract.
type Adapter struct {
	d      *diskv.Diskv
	logger *log.Logger
}

// Open returns an adapter rooted at dir. A nil logger discards failure
// reports.
func Open(dir string, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Adapter{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    func(string) []string { return nil }, // flat, one file per key
			CacheSizeMax: 1024 * 1024,                          // 1MB
		}),
		logger: logger,
	}
}

// Load reads and parses the persisted snapshot. It returns nil, never an
// error, when the key is absent, the blob does not parse, or the payload
// is not a JSON object; every failure is logged.
func (a *Adapter) Load(key string) *model.Snapshot {
	raw, err := a.d.Read(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			a.logger.Printf("storage: read %q: %v", key, err)
		}
		return nil
	}
	if !isObject(raw) {
		a.logger.Printf("storage: %q is not a state object, ignoring", key)
		return nil
	}
	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		a.logger.Printf("storage: parse %q: %v", key, err)
		return nil
	}
	return &snap
}

// Save serializes and writes the state, fire-and-forget. On failure the
// previously persisted blob is left untouched and the caller carries on.
func (a *Adapter) Save(key string, st model.AppState) {
	raw, err := json.Marshal(st)
	if err != nil {
		a.logger.Printf("storage: encode state: %v", err)
		return
	}
	if err := a.d.Write(key, raw); err != nil {
		a.logger.Printf("storage: write %q: %v", key, err)
	}
}

// isObject checks that the first significant byte opens a JSON object,
// rejecting arrays and scalars before they are merged over defaults.
func isObject(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '{'
		}
	}
	return false
}
