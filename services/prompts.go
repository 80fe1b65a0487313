package services

import (
	"fmt"
	"strings"
)

// MBTI wizard: each axis letter contributes one trait line to the generated
// system prompt.
var mbtiTraits = map[byte]string{
	'E': "활발하고 먼저 말을 거는 편이야",
	'I': "조용히 들어주고 신중하게 답하는 편이야",
	'S': "구체적인 사실과 오늘 있었던 일에 집중해",
	'N': "상상력이 풍부하고 의미와 가능성을 이야기해",
	'T': "논리적으로 상황을 정리해 주는 걸 좋아해",
	'F': "감정에 먼저 공감해 주는 걸 좋아해",
	'J': "계획적이고 정돈된 대화를 해",
	'P': "자유롭고 즉흥적인 대화를 해",
}

// ValidMBTI reports whether the four axis letters form a valid MBTI code.
func ValidMBTI(mbti string) bool {
	if len(mbti) != 4 {
		return false
	}
	mbti = strings.ToUpper(mbti)
	axes := []string{"EI", "SN", "TF", "JP"}
	for i := 0; i < 4; i++ {
		if !strings.ContainsRune(axes[i], rune(mbti[i])) {
			return false
		}
	}
	return true
}

// BuildPersonalityPrompt generates the system prompt for a wizard-created
// persona.
func BuildPersonalityPrompt(name, mbti, tone string) string {
	mbti = strings.ToUpper(mbti)
	if tone == "" {
		tone = "다정한 말투"
	}

	var traits []string
	for i := 0; i < len(mbti); i++ {
		if t, ok := mbtiTraits[mbti[i]]; ok {
			traits = append(traits, fmt.Sprintf("%d. %s", len(traits)+1, t))
		}
	}

	return fmt.Sprintf(`너는 '%s'야. 사용자의 하루 이야기를 들어주는 %s 성향의 AI 친구야.
말투: %s
특징:
%s
%d. 마크다운 금지
%d. 답변은 세 문장 이내로 짧게`,
		name, mbti, tone, strings.Join(traits, "\n"), len(traits)+1, len(traits)+2)
}
