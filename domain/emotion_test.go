package domain

import "testing"

func TestEmotionInfo_KnownTags(t *testing.T) {
	tests := []struct {
		tag   Emotion
		emoji string
	}{
		{EmotionHappy, "😀"},
		{EmotionSad, "😢"},
		{EmotionLonging, "🥺"},
		{EmotionFlutter, "😍"},
		{EmotionComfort, "😌"},
	}
	for _, tc := range tests {
		info := tc.tag.Info()
		if info.Emoji != tc.emoji {
			t.Fatalf("Info(%q) emoji got %q want %q", tc.tag, info.Emoji, tc.emoji)
		}
		if info.Label != string(tc.tag) {
			t.Fatalf("Info(%q) label got %q", tc.tag, info.Label)
		}
		if !tc.tag.Known() {
			t.Fatalf("%q should be a known tag", tc.tag)
		}
	}
}

func TestEmotionInfo_UnknownTagFallsBack(t *testing.T) {
	e := Emotion("nostalgia")
	info := e.Info()
	if info.Emoji != "🎵" {
		t.Fatalf("unknown tag emoji got %q want 🎵", info.Emoji)
	}
	if info.Label != "nostalgia" {
		t.Fatalf("unknown tag label got %q, want the raw tag", info.Label)
	}
	if e.Known() {
		t.Fatalf("unknown tag must not report Known")
	}
}

func TestEmotions_OrderIsStable(t *testing.T) {
	got := Emotions()
	want := []Emotion{EmotionHappy, EmotionSad, EmotionLonging, EmotionFlutter, EmotionComfort}
	if len(got) != len(want) {
		t.Fatalf("got %d emotions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d got %q want %q", i, got[i], want[i])
		}
	}
}
