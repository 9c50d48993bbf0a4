package storage

import (
	"encoding/json"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/logger"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
)

// Keys under which mentor state lives in the store.
const (
	KeyMissions     = "mentor_missions"
	KeyEnabledRules = "mentor_enabled_rules"
	KeyConfig       = "mentor_config"
)

// State wraps a Store with typed accessors for the mentor's persisted
// structures. Malformed stored values are logged and treated as absent
// rather than surfaced as errors.
type State struct {
	store Store
}

// NewState creates a typed view over the given store.
func NewState(store Store) *State {
	return &State{store: store}
}

// Store exposes the underlying key-value store.
func (s *State) Store() Store { return s.store }

// LoadMissions returns the persisted mission set, or an empty slice
// when nothing valid is stored.
func (s *State) LoadMissions() []models.Mission {
	var missions []models.Mission
	if !s.load(KeyMissions, &missions) {
		return []models.Mission{}
	}
	return missions
}

// SaveMissions persists the mission set.
func (s *State) SaveMissions(missions []models.Mission) error {
	return s.save(KeyMissions, missions)
}

// LoadEnabledRules returns the user-selected rule subset, or nil when
// the user never narrowed the catalog (nil means "all enabled rules").
func (s *State) LoadEnabledRules() []string {
	var ids []string
	if !s.load(KeyEnabledRules, &ids) {
		return nil
	}
	return ids
}

// SaveEnabledRules persists the user's rule selection.
func (s *State) SaveEnabledRules(ids []string) error {
	return s.save(KeyEnabledRules, ids)
}

// LoadConfig returns the persisted mentor configuration, if any.
func (s *State) LoadConfig() (models.MentorConfig, bool) {
	var cfg models.MentorConfig
	if !s.load(KeyConfig, &cfg) {
		return models.MentorConfig{}, false
	}
	return cfg, true
}

// SaveConfig persists the mentor configuration.
func (s *State) SaveConfig(cfg models.MentorConfig) error {
	return s.save(KeyConfig, cfg)
}

// ClearAll removes every piece of mentor state.
func (s *State) ClearAll() error {
	for _, key := range []string{KeyMissions, KeyEnabledRules, KeyConfig} {
		if err := s.store.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// load decodes the JSON stored under key into out. A read error or
// malformed payload logs a warning and reports the value as absent.
func (s *State) load(key string, out any) bool {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		logger.Get().Warnw("failed to read mentor state", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Get().Warnw("discarding malformed mentor state", "key", key, "error", err)
		return false
	}
	return true
}

func (s *State) save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(key, string(raw))
}
