package catalog

import (
	"context"
	"errors"
	"math/rand"

	"vyria-server/config"
	"vyria-server/internal/core/chat"
	"vyria-server/internal/database"
	"vyria-server/internal/database/model"
	"vyria-server/pkg/logger"

	"gorm.io/gorm"
)

// Language is one supported target language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Service serves the static catalog data: languages, levels, roleplay
// scenarios and study tips. Scenarios and tips live in MySQL; every read
// falls back to the embedded defaults when the database is unreachable,
// so the endpoints keep working without one.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Languages returns the supported languages and proficiency levels.
func (s *Service) Languages() ([]Language, []string) {
	return defaultLanguages, chat.Levels
}

// Scenarios returns the roleplay scenarios available at the given level
// (scenarios whose minimum level is at or below it). An empty level
// returns the full catalog.
func (s *Service) Scenarios(ctx context.Context, level string) ([]model.Scenario, error) {
	if level != "" && chat.LevelRank(level) < 0 {
		return nil, errors.New("unsupported level")
	}

	scenarios := defaultScenarios
	db, err := database.GetDB()
	if err == nil {
		var rows []model.Scenario
		if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
			logger.Error(err, "%v: scenario query failed, serving defaults", config.ModuleCatalog)
		} else if len(rows) > 0 {
			scenarios = rows
		}
	}

	if level == "" {
		return scenarios, nil
	}
	rank := chat.LevelRank(level)
	out := make([]model.Scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		if r := chat.LevelRank(sc.MinLevel); r >= 0 && r <= rank {
			out = append(out, sc)
		}
	}
	return out, nil
}

// RandomTip returns one random study tip.
func (s *Service) RandomTip(ctx context.Context) model.Tip {
	tips := defaultTips
	db, err := database.GetDB()
	if err == nil {
		var rows []model.Tip
		if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
			logger.Error(err, "%v: tip query failed, serving defaults", config.ModuleCatalog)
		} else if len(rows) > 0 {
			tips = rows
		}
	}
	return tips[rand.Intn(len(tips))]
}

// Seed migrates the catalog tables and inserts the embedded defaults into
// empty ones. Best effort: a missing database is logged, not fatal.
func (s *Service) Seed(ctx context.Context) {
	db, err := database.GetDB()
	if err != nil {
		logger.Warn("%v: database unavailable, catalog will serve embedded defaults", config.ModuleCatalog)
		return
	}
	if err := db.WithContext(ctx).AutoMigrate(&model.Scenario{}, &model.Tip{}); err != nil {
		logger.Error(err, "%v: catalog migration failed", config.ModuleCatalog)
		return
	}

	if n, err := database.CountEntities[model.Scenario](ctx); err == nil && n == 0 {
		if err := database.WithTx(ctx, func(tx *gorm.DB) error {
			return tx.Create(&defaultScenarios).Error
		}); err != nil {
			logger.Error(err, "%v: scenario seed failed", config.ModuleCatalog)
		}
	}
	if n, err := database.CountEntities[model.Tip](ctx); err == nil && n == 0 {
		if err := database.WithTx(ctx, func(tx *gorm.DB) error {
			return tx.Create(&defaultTips).Error
		}); err != nil {
			logger.Error(err, "%v: tip seed failed", config.ModuleCatalog)
		}
	}
}
