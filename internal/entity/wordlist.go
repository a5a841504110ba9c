package entity

// WordList is the fixed reference vocabulary. Quiz sessions in "all words"
// mode draw from this list; it is also the fallback when the mistake bank is
// empty.
var WordList = []string{
	"course", "suitcase", "include", "radio", "whoever", "value", "wound", "harvest", "tasty", "record",
	"minor", "exact", "sunset", "listening", "canyon", "elevator", "dangerous", "piano", "silent", "accept",
	"policy", "patient", "further", "system", "ignore", "sailor", "tutor", "beliefs", "bows", "whose",
	"meant", "waste", "grateful", "shampoo", "injury", "poet", "horizon", "autumn", "novel", "partial",
	"routine", "theme", "quote", "minute", "prevent", "rural", "prefer", "rescue", "gallon", "unite",
	"rapid", "private", "purse", "roam", "review", "faucet", "loaves", "pumpkins", "following", "safety",
	"cooperation", "educate", "grief", "reply", "persuade", "mute", "population", "entrance", "myth", "potatoes",
	"champion", "concern", "operate", "involve", "positive", "original", "muscle", "storage", "variety", "vary",
	"location", "radius", "mention", "liberty", "discussion", "edition", "interview", "yield", "curious", "element",
	"surrounded", "creative", "shelves", "headache", "numerator", "outline", "ancient", "earliest", "hanger", "lawyer",
	"suggestion", "disagreement", "selection", "skillful", "requirements", "cleanse", "physical", "musician", "purchase", "scientific",
	"museum", "fossil", "pressure", "forgetting", "regardless", "satisfy", "marriage", "passenger", "sword", "excitement",
	"visible", "familiar", "experience", "immediate", "personal", "mourn", "recycle", "employer", "strength", "sought",
	"capable", "percent", "invisible", "resources", "occur", "descendant", "distance", "wrinkle", "connection", "department",
	"captain", "curtain", "station", "exploded", "language", "consonant", "scent", "syllable", "chemical", "thoughtful",
	"whisper", "guide", "rhythm", "general", "practice", "sincerely", "decision", "necessary", "jewel", "shadow",
	"weird", "height", "bruise", "receive", "separate", "weight", "ought", "eighth", "disappoint", "though",
	"pleasant", "schedule", "island", "oxygen", "stomach", "wreck", "syrup", "jungle", "column", "mayor",
	"hoarse", "chocolate", "knives", "referred", "distributed", "rehearse", "strategy", "gesture", "principal", "ingredient",
	"plumber", "independence", "solar", "choir", "resident", "nationality", "recently", "conversation", "accidentally", "importance",
	"relieve", "multiple", "capacity", "creature", "negative", "intermission", "therefore", "rumor", "invitation", "mixture",
	"realize", "success", "predict", "struggle", "inquire", "ceiling", "emergency", "scarcely", "jealous", "luggage",
	"penguin", "violence", "remarkable", "thicken", "combination", "knowledge", "graduation", "strain", "instruction", "establish",
	"pollute", "shorten", "culture", "governor", "demonstrate", "encouragement", "trophies", "especially", "requirement", "enthusiasm",
	"intelligent", "persuasive", "celebration", "determination", "misunderstand", "unbelievable", "reconsider", "performance", "replacement", "capability",
	"independent", "expression", "operation", "confidence", "competition", "equipment", "organization", "construction", "concentration", "participation",
	"recognition", "announcement", "transportation", "recommendation", "explanation", "communication", "relationship", "refrigeration", "responsibility", "encyclopedia",
	"characteristic", "disastrous", "acquire", "freight", "appointment",
}

// Short words that are still considered easy regardless of length.
var manualEasyWords = map[string]struct{}{
	"course": {}, "radio": {}, "value": {}, "tasty": {}, "minor": {},
	"exact": {}, "listening": {}, "piano": {}, "record": {}, "sunset": {},
}

// WordDifficulty classifies a reference word by length, with a manual
// override set for common short words.
func WordDifficulty(word string) DifficultyLevel {
	if _, ok := manualEasyWords[word]; ok {
		return DifficultyEasy
	}
	switch n := len(word); {
	case n <= 7:
		return DifficultyEasy
	case n <= 10:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}
