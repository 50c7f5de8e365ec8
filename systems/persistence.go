package systems

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/quasilyte/gdata"
)

// SavedGameCfg represents the configuration stored on disk.
// Round flags (NewGame, Outcome) are transient and never saved.
type SavedGameCfg struct {
	Boolean bool  `json:"boolean"`
	Num     uint8 `json:"num"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for configuration storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadGameCfg loads the saved configuration. It returns nil when nothing was saved yet.
func LoadGameCfg() (*SavedGameCfg, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.ItemKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Persistence.ItemKey, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedGameCfg
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfg.Persistence.ItemKey, err)
	}
	return &saved, nil
}

// SaveGameCfg stores the user-adjustable part of gameCfg. Failures are logged, not returned.
func SaveGameCfg(gameCfg *components.GameCfgData) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedGameCfg{
		Boolean: gameCfg.Boolean,
		Num:     gameCfg.Num,
	})
	if err != nil {
		logger.Warn("Could not serialize configuration", "err", err)
		return
	}

	if err := gdataManager.SaveItem(cfg.Persistence.ItemKey, data); err != nil {
		logger.Warn("Could not save configuration", "err", err)
	}
}

// ApplySavedGameCfg copies saved settings into gameCfg. Out of range values are ignored.
func ApplySavedGameCfg(gameCfg *components.GameCfgData, saved *SavedGameCfg) {
	if saved == nil {
		return
	}

	gameCfg.Boolean = saved.Boolean
	if slices.Contains(cfg.GameCfg.NumChoices, saved.Num) {
		gameCfg.Num = saved.Num
	} else {
		logger.Warn("Ignoring saved num outside choices", "num", saved.Num)
	}
}
