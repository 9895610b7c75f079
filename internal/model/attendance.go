package model

// AttendanceStatus 出勤状态，取值范围固定
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// AttendanceStatuses 全部合法状态
var AttendanceStatuses = []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate}

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// Attendance 某学生在某节课的出勤记录
// (session_id, student_id) 唯一，重复点名只会覆盖 status
// swagger:model
type Attendance struct {
	BaseModel
	SessionID uint             `gorm:"not null;uniqueIndex:idx_attendance_session_student,priority:1" json:"session_id"`
	StudentID uint             `gorm:"not null;uniqueIndex:idx_attendance_session_student,priority:2;index" json:"student_id"`
	Status    AttendanceStatus `gorm:"size:16;not null;default:present" json:"status"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Session *Session `gorm:"foreignKey:SessionID" json:"-"`
}

func (Attendance) TableName() string {
	return "attendances"
}
