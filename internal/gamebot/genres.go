package gamebot

// genreIDs maps the recognized genre keywords to the catalog's genre
// identifiers. The table is closed; keywords are matched against the
// whole lower-cased message.
var genreIDs = map[string]string{
	"action":     "action",
	"rpg":        "role-playing-games-rpg",
	"fps":        "shooter",
	"moba":       "multiplayer-online-battle-arena",
	"strategy":   "strategy",
	"simulation": "simulation",
	"sports":     "sports",
	"puzzle":     "puzzle",
	"horror":     "horror",
	"racing":     "racing",
}

// GenreID resolves a genre keyword to the catalog's genre identifier.
func GenreID(keyword string) (string, bool) {
	id, ok := genreIDs[keyword]
	return id, ok
}
