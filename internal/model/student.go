package model

// Student 学生，只属于一个分组
// swagger:model
type Student struct {
	BaseModel
	Name    string `gorm:"size:255;not null;default:''" json:"name"`
	FName   string `gorm:"column:fname;size:255;not null;default:''" json:"fname"`
	GroupID uint   `gorm:"not null;index" json:"group_id"`

	Group       *Group       `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Attendances []Attendance `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Student) TableName() string {
	return "students"
}
