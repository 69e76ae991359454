package models

type Color struct {
	ID    uint   `gorm:"primaryKey"`
	Color string `gorm:"type:varchar(20);not null;default:'brown'"`
}
