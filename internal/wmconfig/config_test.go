package wmconfig

import (
	"testing"

	"github.com/tilewm/tilewm/internal/stack"
)

func TestParseColor(t *testing.T) {
	got, err := parseColor("#4c7899")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	if got != 0x4c7899 {
		t.Errorf("got %#x, want %#x", got, 0x4c7899)
	}

	if _, err := parseColor("not-a-color"); err == nil {
		t.Error("expected error for malformed color")
	}
}

func TestParseButton(t *testing.T) {
	n, err := parseButton("Button3")
	if err != nil || n != 3 {
		t.Errorf("parseButton(Button3) = %d, %v", n, err)
	}
	if _, err := parseButton("NotAButton"); err == nil {
		t.Error("expected error for malformed button token")
	}
}

func TestResolveActionKnownNames(t *testing.T) {
	names := []string{
		"focus-up", "focus-down", "swap-up", "swap-down", "swap-master",
		"shrink", "expand", "next-layout", "first-layout", "kill", "quit",
		"view:1", "greedy-view:2", "shift:3", "spawn:xterm", "inc-master:1",
	}
	for _, n := range names {
		if _, err := resolveAction(n); err != nil {
			t.Errorf("resolveAction(%q): %v", n, err)
		}
	}
}

func TestResolveActionRequiresArgs(t *testing.T) {
	for _, n := range []string{"view", "spawn", "inc-master"} {
		if _, err := resolveAction(n); err == nil {
			t.Errorf("resolveAction(%q) should require an argument", n)
		}
	}
}

func TestResolveActionUnknown(t *testing.T) {
	if _, err := resolveAction("not-a-real-action"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestDefaultConfigIsUsable(t *testing.T) {
	cfg := Default()
	if len(cfg.Tags) == 0 {
		t.Fatal("default config has no tags")
	}
	if len(cfg.Layouts) == 0 {
		t.Fatal("default config has no layouts")
	}
	for combo, action := range cfg.Keys {
		if _, err := resolveAction(action); err != nil {
			t.Errorf("default key binding %q -> %q: %v", combo, action, err)
		}
	}
}

func TestBuildWindowSetRoundRobinsLayouts(t *testing.T) {
	cfg := Default()
	cfg.Tags = []string{"1", "2", "3"}
	cfg.Layouts = []string{"Full()", "Tall(1,0.03,0.5)"}

	ws, err := BuildWindowSet(cfg, []stack.ScreenDetail{{Rect: stack.Rectangle{W: 1920, H: 1080}}})
	if err != nil {
		t.Fatalf("BuildWindowSet: %v", err)
	}
	got := ws.Workspaces()
	if len(got) != 3 {
		t.Fatalf("got %d workspaces, want 3", len(got))
	}
	wantDescriptions := []string{"Full", "Tall"}
	for i, wk := range got {
		want := wantDescriptions[i%len(wantDescriptions)]
		if wk.Layout.Description() != want {
			t.Errorf("workspace %d layout = %q, want %q", i, wk.Layout.Description(), want)
		}
	}
}

func TestBuildWindowSetRejectsEmptyTagsOrLayouts(t *testing.T) {
	screens := []stack.ScreenDetail{{Rect: stack.Rectangle{W: 1920, H: 1080}}}

	cfg := Default()
	cfg.Tags = nil
	if _, err := BuildWindowSet(cfg, screens); err == nil {
		t.Error("expected error for empty tags")
	}

	cfg = Default()
	cfg.Layouts = nil
	if _, err := BuildWindowSet(cfg, screens); err == nil {
		t.Error("expected error for empty layouts")
	}
}
