package entity

import "time"

// Date layouts used inside the persisted profile. LoginDateLayout mirrors the
// snapshot format produced by earlier releases, StatDateLayout is ISO.
const (
	LoginDateLayout = "Mon Jan 02 2006"
	StatDateLayout  = "2006-01-02"
)

// MistakeRecord tracks the review cadence for a single word the user has
// missed at least once. There is at most one record per distinct word.
type MistakeRecord struct {
	Word       string `json:"word"`
	Stage      int    `json:"stage"`
	NextReview int64  `json:"nextReview"` // ms since epoch
}

// NextReviewTime returns the next review instant as a time.Time.
func (r MistakeRecord) NextReviewTime() time.Time {
	return time.UnixMilli(r.NextReview)
}

// Due reports whether the record should appear in a smart-review session.
func (r MistakeRecord) Due(now time.Time) bool {
	return r.NextReview <= now.UnixMilli()
}

// DailyStat aggregates quiz activity for one calendar day.
type DailyStat struct {
	Date       string `json:"date"` // YYYY-MM-DD
	QuizCount  int    `json:"quizCount"`
	ErrorCount int    `json:"errorCount"`
}

// UserProfile is the root persisted entity, one per device. The JSON field
// names match the snapshot format of earlier releases so existing saves keep
// loading.
type UserProfile struct {
	Coins            int             `json:"coins"`
	Inventory        []string        `json:"inventory"`
	MistakeBank      []MistakeRecord `json:"mistakeBank"`
	DailyCoinsEarned int             `json:"dailyCoinsEarned"`
	LastLoginDate    string          `json:"lastLoginDate"`
	StatsHistory     []DailyStat     `json:"statsHistory"`
}

// MaxStatsHistory caps statsHistory at the most recent calendar days; the
// oldest inserted entry is evicted past the cap.
const MaxStatsHistory = 7

// DefaultProfile returns the profile used for a fresh install.
func DefaultProfile(now time.Time) *UserProfile {
	return &UserProfile{
		Inventory:     []string{},
		MistakeBank:   []MistakeRecord{},
		LastLoginDate: now.Format(LoginDateLayout),
		StatsHistory:  []DailyStat{},
	}
}

// Normalize ensures defaults & constraints before persistence.
func (p *UserProfile) Normalize(now time.Time) {
	if p.Inventory == nil {
		p.Inventory = []string{}
	}
	if p.MistakeBank == nil {
		p.MistakeBank = []MistakeRecord{}
	}
	if p.StatsHistory == nil {
		p.StatsHistory = []DailyStat{}
	}
	if p.LastLoginDate == "" {
		p.LastLoginDate = now.Format(LoginDateLayout)
	}
}

// FindMistake returns the index of the record for word, or -1.
func (p *UserProfile) FindMistake(word string) int {
	for i, r := range p.MistakeBank {
		if r.Word == word {
			return i
		}
	}
	return -1
}

// Owns reports whether the given store item is in the inventory.
func (p *UserProfile) Owns(itemID string) bool {
	for _, id := range p.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can read a snapshot without aliasing
// the live profile.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	copy := *p
	copy.Inventory = append([]string{}, p.Inventory...)
	copy.MistakeBank = append([]MistakeRecord{}, p.MistakeBank...)
	copy.StatsHistory = append([]DailyStat{}, p.StatsHistory...)
	return &copy
}
