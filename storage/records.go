package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
)

// 持久化适配层：history / settings 两条记录的整体读写。
// 损坏的记录按不存在处理，绝不向上抛错让调用方崩溃。

// LoadHistory 读取全部心情历史，缺失或损坏时返回空序列。
func LoadHistory(ctx context.Context) []model.MoodEntry {
	raw, err := Backend().Get(ctx, KeyHistory)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Logger.Warn("Failed to read history record, treating as empty",
				zap.Error(err),
			)
		}
		return []model.MoodEntry{}
	}

	var entries []model.MoodEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Logger.Warn("History record is corrupt, treating as empty",
			zap.Int("size", len(raw)),
			zap.Error(err),
		)
		return []model.MoodEntry{}
	}

	if entries == nil {
		entries = []model.MoodEntry{}
	}
	return entries
}

// SaveHistory 整体替换心情历史。
func SaveHistory(ctx context.Context, entries []model.MoodEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := Backend().Put(ctx, KeyHistory, raw); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// ClearHistory 删除 history 记录本身，等价于保存空历史。
func ClearHistory(ctx context.Context) error {
	if err := Backend().Del(ctx, KeyHistory); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// LoadSettings 读取提醒配置，缺失或损坏时返回默认配置。
func LoadSettings(ctx context.Context) model.ReminderSettings {
	raw, err := Backend().Get(ctx, KeySettings)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Logger.Warn("Failed to read settings record, using defaults",
				zap.Error(err),
			)
		}
		return model.DefaultReminderSettings()
	}

	var settings model.ReminderSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		logger.Logger.Warn("Settings record is corrupt, using defaults",
			zap.Error(err),
		)
		return model.DefaultReminderSettings()
	}

	return settings
}

// SaveSettings 整体替换提醒配置，每次变更立即落盘。
func SaveSettings(ctx context.Context, settings model.ReminderSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := Backend().Put(ctx, KeySettings, raw); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
