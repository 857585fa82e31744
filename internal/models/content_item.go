package models

type ContentItem struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Text     string   `gorm:"type:text;not null" json:"text"`
	Category string   `gorm:"size:100;not null;index" json:"category"`
	Type     string   `gorm:"size:20;not null;index" json:"type"`
	Used     bool     `gorm:"not null;default:false" json:"-"`
	Answers  []Answer `gorm:"foreignKey:ItemID" json:"-"`
}

const (
	ContentTypeQuestion   = "question"
	ContentTypeMiniTask   = "mini_task"
	ContentTypeCompliment = "compliment"

	// ContentTypeAny matches items of every type.
	ContentTypeAny = "any"

	// CategoryAll disables category filtering on selection.
	CategoryAll = "all"
)
