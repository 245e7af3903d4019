// Package engine orchestrates the lifecycle of in-memory search indexes.
package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/internal/errors"
	"github.com/rmacedo/memsearch/services"
)

// Engine manages multiple search indexes.
// It implements the services.IndexManager interface.
type Engine struct {
	mu      sync.RWMutex
	indexes map[string]*IndexInstance
	logger  *slog.Logger
}

// NewEngine creates a new search engine orchestrator.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		indexes: make(map[string]*IndexInstance),
		logger:  logger,
	}
}

// CreateIndex creates a new in-memory index with the given settings.
func (e *Engine) CreateIndex(settings config.IndexSettings) error {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return errors.NewValidationError("settings", strings.Join(conflicts, "; "))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[settings.Name]; exists {
		return errors.NewIndexAlreadyExistsError(settings.Name)
	}

	instance, err := NewIndexInstance(settings)
	if err != nil {
		return fmt.Errorf("failed to create new index instance for '%s': %w", settings.Name, err)
	}

	e.indexes[settings.Name] = instance
	e.logger.Info("index created", "index", settings.Name, "searchable_fields", settings.SearchableFields, "allow_all", settings.AllowAll)
	return nil
}

// GetIndex retrieves an index by its name.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, errors.NewIndexNotFoundError(name)
	}
	return instance, nil
}

// GetIndexSettings retrieves a copy of the settings for a specific index.
func (e *Engine) GetIndexSettings(name string) (config.IndexSettings, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return config.IndexSettings{}, errors.NewIndexNotFoundError(name)
	}
	return instance.Settings(), nil
}

// DeleteIndex removes an index and all of its documents.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[name]; !exists {
		return errors.NewIndexNotFoundError(name)
	}
	delete(e.indexes, name)
	e.logger.Info("index deleted", "index", name)
	return nil
}

// ListIndexes returns the names of all existing indexes in sorted order.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.indexes))
	for name := range e.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
