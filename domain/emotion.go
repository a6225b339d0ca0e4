package domain

// Emotion is the tag a diary entry carries. The stored values are the Korean
// labels the product launched with; they are treated as opaque identifiers.
type Emotion string

const (
	EmotionHappy   Emotion = "행복"
	EmotionSad     Emotion = "슬픔"
	EmotionLonging Emotion = "그리움"
	EmotionFlutter Emotion = "설렘"
	EmotionComfort Emotion = "위로"
)

// EmotionInfo pairs an emotion's emoji with its display label.
type EmotionInfo struct {
	Emoji string
	Label string
}

var emotionInfos = map[Emotion]EmotionInfo{
	EmotionHappy:   {Emoji: "😀", Label: "행복"},
	EmotionSad:     {Emoji: "😢", Label: "슬픔"},
	EmotionLonging: {Emoji: "🥺", Label: "그리움"},
	EmotionFlutter: {Emoji: "😍", Label: "설렘"},
	EmotionComfort: {Emoji: "😌", Label: "위로"},
}

// Emotions returns the fixed tag set in picker order.
func Emotions() []Emotion {
	return []Emotion{EmotionHappy, EmotionSad, EmotionLonging, EmotionFlutter, EmotionComfort}
}

// Info resolves the emoji and label for an emotion tag. Tags outside the
// fixed set (old rows, other clients) fall back to a music note with the raw
// tag as label.
func (e Emotion) Info() EmotionInfo {
	if info, ok := emotionInfos[e]; ok {
		return info
	}
	return EmotionInfo{Emoji: "🎵", Label: string(e)}
}

// Known reports whether the tag belongs to the fixed set.
func (e Emotion) Known() bool {
	_, ok := emotionInfos[e]
	return ok
}
