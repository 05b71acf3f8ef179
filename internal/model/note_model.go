package model

import "time"

type Note struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active';index"`
	UserId    uint      `gorm:"not null;index"`
	User      *User     `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`
}

func (Note) TableName() string {
	return "notes"
}
