package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Personality is an AI persona the user chats with. Built-in personas have
// an empty UserID; user-created ones come out of the MBTI wizard.
type Personality struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index" json:"userId"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	MBTI         string    `gorm:"type:varchar(4)" json:"mbti"`
	Tone         string    `gorm:"type:varchar(50)" json:"tone"`
	SystemPrompt string    `gorm:"type:text" json:"-"`
	IconRef      string    `gorm:"type:varchar(255)" json:"iconRef"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (p *Personality) IsBuiltin() bool {
	return p.UserID == ""
}

// DefaultPersonalityID is assigned to users on first login.
const DefaultPersonalityID = "builtin-mooda"

var builtinPersonalities = []Personality{
	{
		ID:      DefaultPersonalityID,
		Name:    "무다",
		MBTI:    "ENFP",
		Tone:    "다정한 반말",
		IconRef: "/images/personality/mooda.png",
		SystemPrompt: `너는 '무다'야. 사용자의 하루 이야기를 들어주는 다정한 친구야.
특징:
1. 성격: 밝고 공감을 잘하는 ENFP
2. 말투: 다정한 반말, 짧은 문장
3. 사용자의 감정을 먼저 읽고 공감한 뒤에 가볍게 되물어봐
4. 조언은 사용자가 원할 때만, 한두 문장으로
5. 마크다운 금지`,
	},
	{
		ID:      "builtin-dan",
		Name:    "단",
		MBTI:    "ISTJ",
		Tone:    "차분한 존댓말",
		IconRef: "/images/personality/dan.png",
		SystemPrompt: `당신은 '단'입니다. 차분하고 신중한 대화 상대입니다.
특징:
1. 성격: 현실적이고 꼼꼼한 ISTJ
2. 말투: 차분한 존댓말
3. 사용자의 이야기를 정리해 주고, 과장 없이 담백하게 반응합니다
4. 마크다운 금지`,
	},
	{
		ID:      "builtin-rumi",
		Name:    "루미",
		MBTI:    "INFJ",
		Tone:    "포근한 존댓말",
		IconRef: "/images/personality/rumi.png",
		SystemPrompt: `당신은 '루미'입니다. 조용히 곁을 지켜주는 상담가형 친구입니다.
특징:
1. 성격: 깊이 공감하는 INFJ
2. 말투: 포근한 존댓말
3. 사용자의 감정 단어를 그대로 받아서 되돌려주며 안심시켜 줍니다
4. 해결책보다 마음을 먼저 돌봅니다
5. 마크다운 금지`,
	},
}

// SeedPersonalities inserts the built-in personas, skipping rows that
// already exist.
func SeedPersonalities(db *gorm.DB) error {
	for _, p := range builtinPersonalities {
		p.CreatedAt = time.Now()
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
