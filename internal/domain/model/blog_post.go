package model

import "time"

// BlogPost carries its display date as text because posts are synced
// from an external editor that supplies preformatted dates.
type BlogPost struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt   string    `gorm:"type:text" json:"excerpt"`
	Image     string    `gorm:"type:varchar(500)" json:"image"`
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	Date      string    `gorm:"type:varchar(50)" json:"date"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
