package models

type Size struct {
	ID       uint   `gorm:"primaryKey"`
	SizeCode string `gorm:"type:varchar(2);not null"`
}
