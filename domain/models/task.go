package models

const (
	TaskStatusTodo = "TODO"
	TaskStatusDone = "DONE"
)

// Task belongs to exactly one user. Timestamps are stored as text, matching
// the schema this service persists to.
type Task struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	UserID      uint   `gorm:"not null;index"`
	User        User   `gorm:"foreignKey:UserID"`
	Title       string `gorm:"size:60;not null"`
	Description string `gorm:"size:255;not null"`
	Status      string `gorm:"default:'TODO';not null"`
	CreatedAt   string `gorm:"type:text"`
	UpdatedAt   string `gorm:"type:text"`
}

func (Task) TableName() string {
	return "tasks"
}
