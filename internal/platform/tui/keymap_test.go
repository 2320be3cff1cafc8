package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a nudges left", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d nudges right", runeKey("d"), core.ActionRight},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"space pauses", runeKey(" "), core.ActionPause},
		{"r restarts", runeKey("r"), core.ActionRestart},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"unbound key", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	if len(DefaultGameKeyMap().ShortHelp()) == 0 {
		t.Error("game key map should have short help")
	}
	if len(DefaultMenuKeyMap().FullHelp()) == 0 {
		t.Error("menu key map should have full help")
	}
	if len(DefaultBoardKeyMap().FullHelp()) != 2 {
		t.Error("scoreboard full help should have two columns")
	}
}
