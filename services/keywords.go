package services

import "MoodaGo/models"

// Affect keyword tables for the fallback classifier. These are data, not
// logic: scoring counts substring occurrences of each keyword in the
// normalized conversation text. Korean stems match their conjugations
// ("좋" matches "좋았어", "좋아요", ...).
//
// Tie-break policy: ties between equal non-zero scores resolve to the
// emotion listed earlier in models.Emotions. All-zero scores mean Neutral.
var emotionKeywords = map[models.Emotion][]string{
	models.EmotionVeryHappy: {"최고", "행복", "신난", "신나", "설레", "완벽", "대박", "사랑"},
	models.EmotionHappy:     {"좋", "기쁘", "즐거", "웃", "감사", "뿌듯", "재밌", "재미있", "다행"},
	models.EmotionNeutral:   {"그냥", "보통", "무난", "평범", "그럭저럭"},
	models.EmotionSad:       {"슬프", "슬퍼", "우울", "눈물", "속상", "외로", "아쉬", "서운"},
	models.EmotionVerySad:   {"힘들", "지쳤", "지친", "최악", "절망", "울었", "괴로", "버티"},
	models.EmotionAngry:     {"화나", "화가", "짜증", "열받", "빡치", "분노", "억울"},
}

// fallbackSummaryDefault is used when the day has no user-authored lines.
const fallbackSummaryDefault = "조용히 하루를 보냈어요."
