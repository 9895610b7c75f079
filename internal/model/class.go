package model

// Class 班级，顶层教学单元
// swagger:model
type Class struct {
	BaseModel
	Name string `gorm:"size:255;not null" json:"name"`

	Groups []Group `gorm:"foreignKey:ClassID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"groups,omitempty"`
}

func (Class) TableName() string {
	return "classes"
}
