package gamebot_test

import (
	"strings"
	"testing"

	"github.com/kittipat/linegamebot/internal/gamebot"
	"github.com/kittipat/linegamebot/internal/rawg"
)

func TestFormatGame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		game rawg.Game
		want string
	}{
		{
			name: "record with website",
			game: rawg.Game{Name: "Portal 2", Rating: 4.6, Released: "2011-04-18", Website: "https://www.thinkwithportals.com"},
			want: "🎮 ชื่อเกม: Portal 2\n⭐ คะแนน: 4.6/5\n📅 วันที่วางจำหน่าย: 2011-04-18\n\nคุณสามารถดูรายละเอียดเพิ่มเติมได้ที่: https://www.thinkwithportals.com",
		},
		{
			name: "record without website",
			game: rawg.Game{Name: "Zelda", Rating: 4.8, Released: "2023-05-12"},
			want: "🎮 ชื่อเกม: Zelda\n⭐ คะแนน: 4.8/5\n📅 วันที่วางจำหน่าย: 2023-05-12\n\nคุณสามารถดูรายละเอียดเพิ่มเติมได้ที่: ไม่มีเว็บไซต์",
		},
		{
			name: "whole number rating has no trailing zeros",
			game: rawg.Game{Name: "Tetris", Rating: 4, Released: "1984-06-06"},
			want: "🎮 ชื่อเกม: Tetris\n⭐ คะแนน: 4/5\n📅 วันที่วางจำหน่าย: 1984-06-06\n\nคุณสามารถดูรายละเอียดเพิ่มเติมได้ที่: ไม่มีเว็บไซต์",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := gamebot.FormatGame(tc.game); got != tc.want {
				t.Errorf("FormatGame() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatGameList(t *testing.T) {
	t.Parallel()

	games := []rawg.Game{
		{Name: "Hades", Rating: 4.4, Released: "2020-09-17"},
		{Name: "Celeste", Rating: 4.3, Released: "2018-01-25"},
	}

	got := gamebot.FormatGameList("🎮 เกมแนว \"action\" ที่น่าสนใจ:\n", games)
	want := "🎮 เกมแนว \"action\" ที่น่าสนใจ:\n" +
		"\n1. Hades\n   ⭐ คะแนน: 4.4/5\n   📅 วันที่วางจำหน่าย: 2020-09-17\n" +
		"\n2. Celeste\n   ⭐ คะแนน: 4.3/5\n   📅 วันที่วางจำหน่าย: 2018-01-25\n"

	if got != want {
		t.Errorf("FormatGameList() = %q, want %q", got, want)
	}
}

func TestFormatGameListKeepsInputOrder(t *testing.T) {
	t.Parallel()

	// Deliberately not sorted by rating; the formatter must not reorder.
	games := []rawg.Game{
		{Name: "B", Rating: 3.1, Released: "2021-01-01"},
		{Name: "A", Rating: 4.9, Released: "2022-01-01"},
	}

	got := gamebot.FormatGameList("header\n", games)
	if strings.Index(got, "1. B") > strings.Index(got, "2. A") {
		t.Errorf("records were reordered: %q", got)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	t.Parallel()

	games := []rawg.Game{
		{Name: "Hades", Rating: 4.4, Released: "2020-09-17"},
		{Name: "Celeste", Rating: 4.3, Released: "2018-01-25"},
	}

	first := gamebot.FormatGameList("header\n", games)
	second := gamebot.FormatGameList("header\n", games)
	if first != second {
		t.Errorf("FormatGameList is not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}

	single := games[0]
	if gamebot.FormatGame(single) != gamebot.FormatGame(single) {
		t.Error("FormatGame is not idempotent")
	}
}
