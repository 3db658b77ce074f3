package gamebot

import "strings"

// IntentKind identifies one of the four response strategies.
type IntentKind int

const (
	// IntentDefault replies with the fixed help text.
	IntentDefault IntentKind = iota
	// IntentTopGamesOfYear replies with this year's top-rated games.
	IntentTopGamesOfYear
	// IntentSearchByName replies with the best match for a game name.
	IntentSearchByName
	// IntentByGenre replies with top-rated games of one genre.
	IntentByGenre
)

// Intent is the result of classifying one inbound message.
type Intent struct {
	Kind IntentKind

	// Query is the search term for IntentSearchByName. May be empty when
	// the user sent the bare command prefix; the search still runs.
	Query string

	// Keyword is the matched genre keyword for IntentByGenre.
	Keyword string
}

// searchPrefix starts a search-by-name command ("recommend game ...").
const searchPrefix = "แนะนำเกม"

// topGamePhrases trigger the top-games-of-the-year reply when they appear
// anywhere in the message.
var topGamePhrases = []string{"เกมยอดนิยมปีนี้", "เกมยอดนิยมในปีนี้"}

// Classify selects exactly one intent for a message. Matching is done on
// the lower-cased, trimmed text in fixed priority order: top-of-year
// phrases, the search prefix, an exact genre keyword, then the default.
func Classify(text string) Intent {
	msg := strings.ToLower(strings.TrimSpace(text))

	for _, phrase := range topGamePhrases {
		if strings.Contains(msg, phrase) {
			return Intent{Kind: IntentTopGamesOfYear}
		}
	}

	if strings.HasPrefix(msg, searchPrefix) {
		query := strings.TrimSpace(strings.TrimPrefix(msg, searchPrefix))
		return Intent{Kind: IntentSearchByName, Query: query}
	}

	if _, ok := GenreID(msg); ok {
		return Intent{Kind: IntentByGenre, Keyword: msg}
	}

	return Intent{Kind: IntentDefault}
}
