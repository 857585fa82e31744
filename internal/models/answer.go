package models

import "time"

type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ItemID     uint      `gorm:"not null;index" json:"item_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	AuthorName string    `gorm:"size:100;not null" json:"author_name"`
	Timestamp  time.Time `gorm:"not null;index:idx_answer_order" json:"timestamp"`
}
