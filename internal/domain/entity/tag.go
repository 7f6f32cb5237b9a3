package entity

// Tag is a shared label with a display color. Tags are not owned by anyone:
// deleting a tag only clears its associations, never the todos behind them.
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Color string `json:"color" gorm:"size:7;not null;default:'#3498db'"`
	Todos []Todo `json:"-" gorm:"many2many:todo_tags"`
}
