package usecase

import (
	"sort"
	"time"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/samber/lo"
)

// ReviewIntervals is the fixed Ebbinghaus ladder in minutes, indexed by
// review stage. Stage growth caps at the last rung (~7 days).
var ReviewIntervals = []int{1, 10, 60, 300, 1440, 4320, 10080}

// MaxReviewStage is the highest reachable stage.
var MaxReviewStage = len(ReviewIntervals) - 1

func nextReviewAt(now time.Time, stage int) int64 {
	return now.Add(time.Duration(ReviewIntervals[stage]) * time.Minute).UnixMilli()
}

// ApplyAnswer folds one (word, correctness) quiz outcome into the mistake
// bank and returns the new bank. The input slice is not mutated.
//
// A first-try correct answer never enters the bank. A correct answer on a
// tracked word advances its stage by one, capped at MaxReviewStage; the
// record is never removed, it keeps cycling as a fading-review candidate.
// Any incorrect answer resets the word to stage 0.
func ApplyAnswer(bank []entity.MistakeRecord, word string, correct bool, now time.Time) []entity.MistakeRecord {
	next := append([]entity.MistakeRecord{}, bank...)
	idx := -1
	for i, r := range next {
		if r.Word == word {
			idx = i
			break
		}
	}

	if correct {
		if idx < 0 {
			return next
		}
		stage := next[idx].Stage + 1
		if stage > MaxReviewStage {
			stage = MaxReviewStage
		}
		next[idx].Stage = stage
		next[idx].NextReview = nextReviewAt(now, stage)
		return next
	}

	if idx >= 0 {
		next[idx].Stage = 0
		next[idx].NextReview = nextReviewAt(now, 0)
		return next
	}
	return append(next, entity.MistakeRecord{
		Word:       word,
		Stage:      0,
		NextReview: nextReviewAt(now, 0),
	})
}

// DueRecords returns every record whose review time has arrived, most
// overdue first.
func DueRecords(bank []entity.MistakeRecord, now time.Time) []entity.MistakeRecord {
	due := lo.Filter(bank, func(r entity.MistakeRecord, _ int) bool {
		return r.Due(now)
	})
	sortByNextReview(due)
	return due
}

// UpcomingRecords returns the whole bank ordered soonest-upcoming first. Used
// when nothing is due but the caller opts into reviewing ahead of schedule.
func UpcomingRecords(bank []entity.MistakeRecord) []entity.MistakeRecord {
	upcoming := append([]entity.MistakeRecord{}, bank...)
	sortByNextReview(upcoming)
	return upcoming
}

func sortByNextReview(records []entity.MistakeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].NextReview < records[j].NextReview
	})
}
