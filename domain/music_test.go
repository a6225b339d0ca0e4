package domain

import "testing"

func TestYouTubeEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "watch", in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "https://www.youtube.com/embed/dQw4w9WgXcQ", ok: true},
		{name: "short", in: "https://youtu.be/dQw4w9WgXcQ", want: "https://www.youtube.com/embed/dQw4w9WgXcQ", ok: true},
		{name: "extra params", in: "https://www.youtube.com/watch?list=abc&v=dQw4w9WgXcQ", want: "https://www.youtube.com/embed/dQw4w9WgXcQ", ok: true},
		{name: "spotify", in: "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC", ok: false},
		{name: "plain text", in: "not a url", ok: false},
		{name: "empty", in: "", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := YouTubeEmbedURL(tc.in)
			if ok != tc.ok {
				t.Fatalf("YouTubeEmbedURL(%q) ok got %v want %v", tc.in, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("YouTubeEmbedURL(%q) got %q want %q", tc.in, got, tc.want)
			}
		})
	}
}
