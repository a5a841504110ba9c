package entity

import (
	"fmt"
	"strings"
)

// DifficultyLevel drives how the content provider tailors a word card.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "Easy"
	DifficultyMedium DifficultyLevel = "Medium"
	DifficultyHard   DifficultyLevel = "Hard"
)

// ParseDifficulty converts an arbitrary string into a supported level,
// defaulting to Medium.
func ParseDifficulty(s string) DifficultyLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// WordDetail is the learning-card payload returned by the content provider.
// Field names follow the provider's JSON contract.
type WordDetail struct {
	Word                string `json:"word"`
	IPAUS               string `json:"ipa_us"`
	IPAUK               string `json:"ipa_uk"`
	PartOfSpeech        string `json:"part_of_speech"`
	ChineseDefinition   string `json:"chinese_definition"`
	EtymologyOrMnemonic string `json:"etymology_or_mnemonic"`
	ExampleSentenceEN   string `json:"example_sentence_en"`
	ExampleSentenceCN   string `json:"example_sentence_cn"`
	DifficultyLevel     string `json:"difficulty_level"`
}

// WordCacheKey builds the cache key shared by both cache tiers.
func WordCacheKey(word string, difficulty DifficultyLevel) string {
	return word + "_" + string(difficulty)
}

// PlaceholderWordDetail is substituted when the provider is unavailable so
// the learning flow never halts.
func PlaceholderWordDetail(word string, difficulty DifficultyLevel) *WordDetail {
	return &WordDetail{
		Word:                word,
		IPAUS:               "/.../",
		IPAUK:               "/.../",
		PartOfSpeech:        "n/adj/v",
		ChineseDefinition:   "暫時無法取得解釋",
		EtymologyOrMnemonic: "Loading failed",
		ExampleSentenceEN:   fmt.Sprintf("Blackpink loves the word %s.", word),
		ExampleSentenceCN:   fmt.Sprintf("Blackpink 喜歡這個字 %s。", word),
		DifficultyLevel:     string(difficulty),
	}
}

// NormalizeWordToken lowercases and trims a word for answer comparisons.
func NormalizeWordToken(word string) string {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(trimmed)
}
