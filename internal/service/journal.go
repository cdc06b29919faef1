package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/internal/model/dto"
	pkgerrors "github.com/turi333-pixel/MoodFlow/pkg/errors"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
	"github.com/turi333-pixel/MoodFlow/pkg/metrics"
	"github.com/turi333-pixel/MoodFlow/pkg/snowflake"
	"github.com/turi333-pixel/MoodFlow/storage"
	"github.com/turi333-pixel/MoodFlow/utils"
)

// JournalService 负责当日打卡的生命周期：同一天最多一条记录，重复提交覆盖原记录。
// 所有写路径都持锁串行化，历史整体读改写不会交叉。
type JournalService struct {
	mu sync.Mutex
}

var (
	journalService *JournalService
	journalOnce    sync.Once
)

func Journal() *JournalService {
	journalOnce.Do(func() {
		journalService = &JournalService{}
	})
	return journalService
}

// SubmitEntry 记录今天的心情。当天已有记录时移除旧记录、追加新记录。
func (s *JournalService) SubmitEntry(
	ctx context.Context,
	req dto.SubmitEntryRequest,
) (*dto.EntryData, error) {
	mood := model.Mood(req.Mood)
	if !mood.Valid() {
		logger.Logger.Warn("Rejected unknown mood type", zap.String("mood", req.Mood))
		return nil, pkgerrors.MoodInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entries := storage.LoadHistory(ctx)

	id, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entry id: %w", err)
	}
	entry := model.MoodEntry{
		ID:   id,
		Date: now,
		Mood: mood,
		Note: strings.TrimSpace(req.Note),
	}

	// 当天已有记录时先整体移除再追加，整条替换而不是合并
	overwrite := false
	kept := entries[:0]
	for _, e := range entries {
		if utils.SameLocalDay(e.Date, now) {
			overwrite = true
			continue
		}
		kept = append(kept, e)
	}
	entries = append(kept, entry)

	if err := storage.SaveHistory(ctx, entries); err != nil {
		logger.Logger.Error("Failed to persist mood entry",
			zap.String("mood", string(mood)),
			zap.Bool("overwrite", overwrite),
			zap.Error(err),
		)
		return nil, pkgerrors.StorageFailure
	}

	metrics.GetMetrics().RecordCheckin(ctx, string(mood), overwrite)
	logger.Logger.Info("Mood entry saved",
		zap.String("entry_id", entry.ID),
		zap.String("mood", string(mood)),
		zap.Bool("overwrite", overwrite),
	)

	data := dto.NewEntryData(entry)
	return &data, nil
}

// TodayEntry 返回今天的打卡记录，没有则报 ENTRY_NOT_FOUND。
func (s *JournalService) TodayEntry(ctx context.Context) (*dto.EntryData, error) {
	now := time.Now()
	for _, e := range storage.LoadHistory(ctx) {
		if utils.SameLocalDay(e.Date, now) {
			data := dto.NewEntryData(e)
			return &data, nil
		}
	}
	return nil, pkgerrors.EntryNotFound
}

// HasEntryForToday 给提醒调度器用的轻量判断。
func (s *JournalService) HasEntryForToday(ctx context.Context) bool {
	now := time.Now()
	for _, e := range storage.LoadHistory(ctx) {
		if utils.SameLocalDay(e.Date, now) {
			return true
		}
	}
	return false
}

// History 返回全部历史，顺序即存储内的插入顺序。
func (s *JournalService) History(ctx context.Context) (*dto.HistoryData, error) {
	data := dto.NewHistoryData(storage.LoadHistory(ctx))
	return &data, nil
}

// ClearHistory 清空全部历史记录。
func (s *JournalService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.ClearHistory(ctx); err != nil {
		logger.Logger.Error("Failed to clear history", zap.Error(err))
		return pkgerrors.StorageFailure
	}

	metrics.GetMetrics().RecordHistoryCleared(ctx)
	logger.Logger.Info("Mood history cleared")
	return nil
}

// WeeklySummary 统计最近 7 个自然日内的记录。
func (s *JournalService) WeeklySummary(ctx context.Context) (*dto.WeeklySummaryData, error) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, -7)

	counts := make(map[model.Mood]int)
	total := 0
	for _, e := range storage.LoadHistory(ctx) {
		if e.Date.Before(cutoff) {
			continue
		}
		counts[e.Mood]++
		total++
	}

	if total == 0 {
		data := dto.NewWeeklySummaryData(model.WeeklySummary{
			Overview: "No entries in the last 7 days. Check in to start your streak!",
		})
		return &data, nil
	}

	var top model.Mood
	best := 0
	for _, m := range model.MoodCatalog {
		if counts[m.Type] > best {
			best = counts[m.Type]
			top = m.Type
		}
	}

	data := dto.NewWeeklySummaryData(model.WeeklySummary{
		Overview: fmt.Sprintf("You checked in %d time(s) this week, most often feeling %s.",
			total, top.Label()),
		MostFrequentMood: top,
		MoodCount:        total,
	})
	return &data, nil
}
