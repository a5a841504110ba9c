package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/eslsoft/blinkvocab/internal/repository"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ProgressUsecase is the single source of truth for the user profile. Every
// mutation is a synchronous read-modify-write over the in-memory profile
// followed by a full-snapshot persist.
type ProgressUsecase interface {
	Load(ctx context.Context) error
	Snapshot() entity.UserProfile
	AddCoins(ctx context.Context, amount int) error
	DeductCoins(ctx context.Context, amount int) error
	AddToInventory(ctx context.Context, itemID string) error
	RecordQuizAnswer(ctx context.Context, word string, correct bool) error
	Persist(ctx context.Context) error
	ChartData() []entity.DailyStat
}

// NewProgressUsecase wires the snapshot repository with default behaviour.
func NewProgressUsecase(repo repository.SnapshotRepository, logger *logrus.Logger) ProgressUsecase {
	return &progressUsecase{
		repo:   repo,
		logger: logger,
		clock:  time.Now,
	}
}

type progressUsecase struct {
	repo   repository.SnapshotRepository
	logger *logrus.Logger
	clock  func() time.Time

	mu      sync.Mutex
	profile *entity.UserProfile
}

// Load reads the persisted snapshot, migrates it, applies the daily rollover
// and persists the result. A corrupt snapshot is replaced by the default
// profile; startup is never blocked by the persisted format.
func (u *progressUsecase) Load(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.clock()
	raw, err := u.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load profile snapshot: %w", err)
	}

	profile, err := DecodeProfileSnapshot(raw, now)
	if err != nil {
		u.logger.WithError(err).Warn("persisted profile unreadable, starting fresh")
		profile = entity.DefaultProfile(now)
	}

	u.profile = profile
	u.rolloverLocked(now)
	return u.persistLocked(ctx)
}

// DecodeProfileSnapshot parses raw snapshot bytes into a profile, applying
// schema migrations:
//
//  1. A missing statsHistory field becomes an empty sequence.
//  2. Legacy mistakeBank entries that are plain word strings become
//     structured records at stage 0, due now.
//
// A nil snapshot yields the default profile; undecodable bytes yield
// entity.ErrCorruptState.
func DecodeProfileSnapshot(raw []byte, now time.Time) (*entity.UserProfile, error) {
	if raw == nil {
		return entity.DefaultProfile(now), nil
	}

	var persisted struct {
		Coins            int                `json:"coins"`
		Inventory        []string           `json:"inventory"`
		MistakeBank      []json.RawMessage  `json:"mistakeBank"`
		DailyCoinsEarned int                `json:"dailyCoinsEarned"`
		LastLoginDate    string             `json:"lastLoginDate"`
		StatsHistory     []entity.DailyStat `json:"statsHistory"`
	}
	if err := json.Unmarshal(raw, &persisted); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrCorruptState, err)
	}

	bank := make([]entity.MistakeRecord, 0, len(persisted.MistakeBank))
	seen := make(map[string]struct{}, len(persisted.MistakeBank))
	for _, entry := range persisted.MistakeBank {
		var legacy string
		if err := json.Unmarshal(entry, &legacy); err == nil {
			if _, dup := seen[legacy]; dup {
				continue
			}
			seen[legacy] = struct{}{}
			bank = append(bank, entity.MistakeRecord{Word: legacy, Stage: 0, NextReview: now.UnixMilli()})
			continue
		}
		var record entity.MistakeRecord
		if err := json.Unmarshal(entry, &record); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrCorruptState, err)
		}
		if _, dup := seen[record.Word]; dup {
			continue
		}
		seen[record.Word] = struct{}{}
		bank = append(bank, record)
	}

	profile := &entity.UserProfile{
		Coins:            persisted.Coins,
		Inventory:        persisted.Inventory,
		MistakeBank:      bank,
		DailyCoinsEarned: persisted.DailyCoinsEarned,
		LastLoginDate:    persisted.LastLoginDate,
		StatsHistory:     persisted.StatsHistory,
	}
	profile.Normalize(now)
	return profile, nil
}

// Snapshot returns a deep copy of the current profile.
func (u *progressUsecase) Snapshot() entity.UserProfile {
	u.mu.Lock()
	defer u.mu.Unlock()
	return *u.profile.Clone()
}

// AddCoins credits coins and the daily-earned counter. No upper bound is
// enforced.
func (u *progressUsecase) AddCoins(ctx context.Context, amount int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.profile.Coins += amount
	u.profile.DailyCoinsEarned += amount
	return u.persistLocked(ctx)
}

// DeductCoins debits coins without clamping at zero. Callers must check
// affordability first.
func (u *progressUsecase) DeductCoins(ctx context.Context, amount int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.profile.Coins -= amount
	return u.persistLocked(ctx)
}

// AddToInventory appends unconditionally; duplicate-purchase prevention is
// the caller's responsibility.
func (u *progressUsecase) AddToInventory(ctx context.Context, itemID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.profile.Inventory = append(u.profile.Inventory, itemID)
	return u.persistLocked(ctx)
}

// RecordQuizAnswer folds one quiz outcome into the mistake bank and today's
// stats, then persists the snapshot.
func (u *progressUsecase) RecordQuizAnswer(ctx context.Context, word string, correct bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.clock()
	u.profile.MistakeBank = ApplyAnswer(u.profile.MistakeBank, word, correct, now)

	today := now.Format(entity.StatDateLayout)
	updated := false
	for i := range u.profile.StatsHistory {
		if u.profile.StatsHistory[i].Date == today {
			u.profile.StatsHistory[i].QuizCount++
			if !correct {
				u.profile.StatsHistory[i].ErrorCount++
			}
			updated = true
			break
		}
	}
	if !updated {
		stat := entity.DailyStat{Date: today, QuizCount: 1}
		if !correct {
			stat.ErrorCount = 1
		}
		u.profile.StatsHistory = appendStatCapped(u.profile.StatsHistory, stat)
	}

	return u.persistLocked(ctx)
}

// Persist writes the current snapshot on demand (manual save).
func (u *progressUsecase) Persist(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.persistLocked(ctx)
}

// ChartData returns the last seven calendar days, filling days with no
// recorded activity with zero counts.
func (u *progressUsecase) ChartData() []entity.DailyStat {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.clock()
	days := make([]string, 0, entity.MaxStatsHistory)
	for i := entity.MaxStatsHistory - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i).Format(entity.StatDateLayout))
	}

	return lo.Map(days, func(date string, _ int) entity.DailyStat {
		if stat, ok := lo.Find(u.profile.StatsHistory, func(s entity.DailyStat) bool {
			return s.Date == date
		}); ok {
			return stat
		}
		return entity.DailyStat{Date: date}
	})
}

// rolloverLocked applies the once-per-startup daily transition: reset the
// daily coin counter on a new calendar day and make sure today has a stats
// entry.
func (u *progressUsecase) rolloverLocked(now time.Time) {
	today := now.Format(entity.LoginDateLayout)
	if u.profile.LastLoginDate != today {
		u.profile.DailyCoinsEarned = 0
		u.profile.LastLoginDate = today
	}

	statsDate := now.Format(entity.StatDateLayout)
	for _, s := range u.profile.StatsHistory {
		if s.Date == statsDate {
			return
		}
	}
	u.profile.StatsHistory = appendStatCapped(u.profile.StatsHistory, entity.DailyStat{Date: statsDate})
}

// appendStatCapped appends a stat and evicts the oldest-inserted entry past
// the cap. Eviction is by insertion order, not by date value.
func appendStatCapped(history []entity.DailyStat, stat entity.DailyStat) []entity.DailyStat {
	history = append(history, stat)
	if len(history) > entity.MaxStatsHistory {
		history = history[1:]
	}
	return history
}

func (u *progressUsecase) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(u.profile)
	if err != nil {
		return fmt.Errorf("encode profile snapshot: %w", err)
	}
	if err := u.repo.Save(ctx, raw); err != nil {
		return fmt.Errorf("save profile snapshot: %w", err)
	}
	return nil
}
