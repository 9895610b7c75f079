package model

// Session 分组的一次课
// Date/StartTime/EndTime 以字符串保存（YYYY-MM-DD / HH:MM），不做时区换算
// swagger:model
type Session struct {
	BaseModel
	GroupID   uint   `gorm:"not null;index" json:"group_id"`
	Date      string `gorm:"size:10;not null;index" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Topic     string `gorm:"size:255" json:"topic"`

	Group       *Group       `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Attendances []Attendance `gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}
