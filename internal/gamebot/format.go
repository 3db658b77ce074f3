package gamebot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kittipat/linegamebot/internal/rawg"
)

const noWebsiteText = "ไม่มีเว็บไซต์"

// FormatGame renders a single game record with name, rating, release
// date, and the game's website when the catalog has one.
func FormatGame(game rawg.Game) string {
	website := game.Website
	if website == "" {
		website = noWebsiteText
	}
	return fmt.Sprintf("🎮 ชื่อเกม: %s\n⭐ คะแนน: %s/5\n📅 วันที่วางจำหน่าย: %s\n\nคุณสามารถดูรายละเอียดเพิ่มเติมได้ที่: %s",
		game.Name, formatRating(game.Rating), game.Released, website)
}

// FormatGameList renders a header followed by a 1-indexed block per
// record. Records keep their input order; no sorting happens here.
func FormatGameList(header string, games []rawg.Game) string {
	var sb strings.Builder
	sb.WriteString(header)
	for i, game := range games {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n   ⭐ คะแนน: %s/5\n   📅 วันที่วางจำหน่าย: %s\n",
			i+1, game.Name, formatRating(game.Rating), game.Released))
	}
	return sb.String()
}

// formatRating renders a catalog rating without trailing zeros, matching
// how the catalog itself reports them (4.8, 4).
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
