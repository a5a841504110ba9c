package entity

import (
	"testing"
	"time"
)

func TestDefaultProfile(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	p := DefaultProfile(now)

	if p.Coins != 0 || p.DailyCoinsEarned != 0 {
		t.Errorf("expected zero balances, got %+v", p)
	}
	if p.LastLoginDate != "Fri Mar 01 2024" {
		t.Errorf("unexpected login date %q", p.LastLoginDate)
	}
	if p.Inventory == nil || p.MistakeBank == nil || p.StatsHistory == nil {
		t.Error("collections must be non-nil so they serialize as arrays")
	}
}

func TestNormalizeFillsNilCollections(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	p := &UserProfile{Coins: 7}
	p.Normalize(now)

	if p.Inventory == nil || p.MistakeBank == nil || p.StatsHistory == nil {
		t.Error("Normalize left nil collections")
	}
	if p.LastLoginDate == "" {
		t.Error("Normalize left empty login date")
	}
	if p.Coins != 7 {
		t.Errorf("Normalize changed coins: %d", p.Coins)
	}
}

func TestMistakeRecordDue(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	past := MistakeRecord{NextReview: now.Add(-time.Second).UnixMilli()}
	boundary := MistakeRecord{NextReview: now.UnixMilli()}
	future := MistakeRecord{NextReview: now.Add(time.Second).UnixMilli()}

	if !past.Due(now) || !boundary.Due(now) {
		t.Error("records at or before now must be due")
	}
	if future.Due(now) {
		t.Error("future record must not be due")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := &UserProfile{
		Coins:       10,
		Inventory:   []string{"item-1"},
		MistakeBank: []MistakeRecord{{Word: "piano"}},
		StatsHistory: []DailyStat{
			{Date: "2024-03-01", QuizCount: 1},
		},
	}

	c := p.Clone()
	c.Inventory[0] = "other"
	c.MistakeBank[0].Word = "other"
	c.StatsHistory[0].QuizCount = 99

	if p.Inventory[0] != "item-1" || p.MistakeBank[0].Word != "piano" || p.StatsHistory[0].QuizCount != 1 {
		t.Errorf("Clone shares backing arrays: %+v", p)
	}
}

func TestOwns(t *testing.T) {
	p := &UserProfile{Inventory: []string{"item-1", "item-2"}}
	if !p.Owns("item-2") {
		t.Error("expected ownership of item-2")
	}
	if p.Owns("item-3") {
		t.Error("unexpected ownership of item-3")
	}
}
