package model

// Group 班级下的分组（小班/实验组等）
// swagger:model
type Group struct {
	BaseModel
	Name    string `gorm:"size:255;not null" json:"name"`
	Type    string `gorm:"size:255;not null" json:"type"`
	ClassID uint   `gorm:"not null;index" json:"class_id"`

	Class    *Class    `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Students []Student `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Sessions []Session `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Group) TableName() string {
	return "groups"
}
