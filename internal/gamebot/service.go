// Package gamebot implements the message-handling core of the bot:
// intent classification, catalog queries, and reply composition. Every
// inbound text message maps to exactly one reply string; catalog
// failures are absorbed here and turned into fixed apology messages so
// the user always gets an answer.
package gamebot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kittipat/linegamebot/internal/rawg"
)

// Fixed reply strings. helpReply advertises the three usable commands.
const (
	helpReply = "พิมพ์ 'แนะนำเกม [ชื่อเกม]' เพื่อค้นหาข้อมูลเกม หรือพิมพ์ 'เกมยอดนิยมปีนี้' เพื่อรับคําแนะนำเกม 10 อันดับที่นิยมสูงสุดในปีนี้ หรือพิมพ์ชื่อแนวเกม เช่น 'Action', 'RPG', 'FPS' เพื่อรับคำแนะนำเกมจากแนวนั้นๆ"

	searchNotFoundReply = "ขออภัย ไม่พบข้อมูลเกี่ยวกับเกมนี้ในระบบ 😔"
	topGamesEmptyReply  = "ขออภัย ไม่พบข้อมูลเกมยอดนิยมในปีนี้"

	catalogErrorReply  = "เกิดข้อผิดพลาดขณะค้นหาเกม โปรดลองอีกครั้ง"
	topGamesErrorReply = "เกิดข้อผิดพลาดขณะค้นหาเกมยอดนิยม โปรดลองอีกครั้ง"
)

// selectionPolicy decides which search result to present.
type selectionPolicy int

// selectFirst trusts the catalog's own relevance ordering and presents
// the first result.
const selectFirst selectionPolicy = iota

// Service composes the reply for each inbound message by classifying it
// and querying the game catalog. It is stateless across requests.
type Service struct {
	catalog   rawg.Client
	log       *slog.Logger
	now       func() time.Time
	selection selectionPolicy
}

// NewService creates a new reply service backed by the given catalog.
func NewService(catalog rawg.Client, log *slog.Logger) *Service {
	return &Service{
		catalog:   catalog,
		log:       log.With("component", "gamebot"),
		now:       time.Now,
		selection: selectFirst,
	}
}

// Reply produces the single reply text for an inbound message. It never
// returns an empty string and never fails: every downstream error
// becomes a fixed user-visible message.
func (s *Service) Reply(ctx context.Context, text string) string {
	intent := Classify(text)

	switch intent.Kind {
	case IntentTopGamesOfYear:
		return s.TopGamesOfYear(ctx)
	case IntentSearchByName:
		return s.SearchGame(ctx, intent.Query)
	case IntentByGenre:
		genreID, ok := GenreID(intent.Keyword)
		if !ok {
			// Only reachable if the keyword table and genre map diverge.
			s.log.ErrorContext(ctx, "Classified genre keyword has no mapping", "keyword", intent.Keyword)
			return helpReply
		}
		return s.GamesByGenre(ctx, genreID)
	default:
		return helpReply
	}
}

// SearchGame looks a game up by name and presents the selected match.
func (s *Service) SearchGame(ctx context.Context, query string) string {
	games, err := s.catalog.Search(ctx, query)
	if err != nil {
		s.log.ErrorContext(ctx, "Game search failed", "query", query, "error", err)
		return catalogErrorReply
	}
	if len(games) == 0 {
		return searchNotFoundReply
	}
	return FormatGame(s.pick(games))
}

// TopGamesOfYear presents the top-rated games released in the current
// calendar year, computed from the clock at call time.
func (s *Service) TopGamesOfYear(ctx context.Context) string {
	year := s.now().Year()

	games, err := s.catalog.TopOfYear(ctx, year)
	if err != nil {
		s.log.ErrorContext(ctx, "Top games query failed", "year", year, "error", err)
		return topGamesErrorReply
	}
	if len(games) == 0 {
		return topGamesEmptyReply
	}

	header := fmt.Sprintf("🎮 10 อันดับเกมยอดนิยมในปี %d:\n", year)
	return FormatGameList(header, games)
}

// GamesByGenre presents the top-rated games of one catalog genre.
func (s *Service) GamesByGenre(ctx context.Context, genreID string) string {
	games, err := s.catalog.ByGenre(ctx, genreID)
	if err != nil {
		s.log.ErrorContext(ctx, "Genre query failed", "genre", genreID, "error", err)
		return catalogErrorReply
	}
	if len(games) == 0 {
		return fmt.Sprintf("ขออภัย ไม่พบเกมในแนว \"%s\" 😔", genreID)
	}

	header := fmt.Sprintf("🎮 เกมแนว \"%s\" ที่น่าสนใจ:\n", genreID)
	return FormatGameList(header, games)
}

// pick applies the selection policy to a non-empty result list.
func (s *Service) pick(games []rawg.Game) rawg.Game {
	// selectFirst is currently the only policy.
	return games[0]
}
