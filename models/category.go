package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Slug     string    `json:"slug"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
