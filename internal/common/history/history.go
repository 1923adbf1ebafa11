// Package history persists which candidates were accepted for which
// patterns, so frequently picked entries can be boosted in later rankings.
package history

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ferret-sh/ferret/internal/common"
)

type Usage struct {
	LastUsed time.Time
	Amount   int
}

type History struct {
	Name string
	Data map[string]map[string]*Usage

	mu sync.Mutex
}

// Save records that identifier was accepted for pattern and persists the
// history to the cache dir. Persistence failures are logged, never fatal.
func (h *History) Save(pattern, identifier string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.Data[pattern]; !ok {
		h.Data[pattern] = make(map[string]*Usage)
	}

	if val, ok := h.Data[pattern][identifier]; ok {
		val.LastUsed = time.Now()
		val.Amount = min(val.Amount+1, 10)
	} else {
		h.Data[pattern][identifier] = &Usage{
			LastUsed: time.Now(),
			Amount:   1,
		}
	}

	var b bytes.Buffer
	encoder := gob.NewEncoder(&b)

	err := encoder.Encode(h)
	if err != nil {
		slog.Error("history", "encode", err)
		return
	}

	file := common.CacheFile(fmt.Sprintf("%s_history.gob", h.Name))

	err = os.MkdirAll(filepath.Dir(file), 0755)
	if err != nil {
		slog.Error("history", "createdirs", err)
		return
	}

	err = os.WriteFile(file, b.Bytes(), 0o600)
	if err != nil {
		slog.Error("history", "writefile", err)
	}
}

// FindUsage sums usage over every recorded pattern that prefixes the
// current one, so "fo" boosts what was accepted for "f".
func (h *History) FindUsage(pattern, identifier string) (int, time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var usage int
	var lastUsed time.Time

	for k, v := range h.Data {
		if strings.HasPrefix(pattern, k) || pattern == "" {
			if n, ok := v[identifier]; ok {
				usage = usage + n.Amount

				if n.LastUsed.After(lastUsed) {
					lastUsed = n.LastUsed
				}
			}
		}
	}

	return usage, lastUsed
}

// CalcUsageScore converts usage into a score boost: frequency times a
// base that decays with days since last use, never below 1 for anything
// used at all.
func (h *History) CalcUsageScore(pattern, identifier string) int {
	amount, last := h.FindUsage(pattern, identifier)

	if amount == 0 {
		return 0
	}

	base := 10

	days := int(time.Since(last).Hours() / 24)
	if days > 0 {
		base -= days
	}

	return max(base*amount, 1)
}

// Load reads the named history from the cache dir, returning an empty
// history when none exists or decoding fails.
func Load(name string) *History {
	h := History{
		Data: make(map[string]map[string]*Usage),
		Name: name,
	}

	file := common.CacheFile(fmt.Sprintf("%s_history.gob", name))

	if common.FileExists(file) {
		f, err := os.ReadFile(file)
		if err != nil {
			slog.Error("history", "load", err)
		} else {
			decoder := gob.NewDecoder(bytes.NewReader(f))

			err = decoder.Decode(&h)
			if err != nil {
				slog.Error("history", "decoding", err)
			}
		}
	}

	return &h
}
