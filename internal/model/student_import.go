package model

const (
	ImportSourceFile = "file"
	ImportSourceList = "list"
)

// StudentImport 一次批量导入的记录，只追加不修改
// 删除分组时随分组一起清理
// swagger:model
type StudentImport struct {
	BaseModel
	GroupID       uint   `gorm:"not null;index" json:"group_id"`
	Source        string `gorm:"size:16;not null" json:"source"`
	Filename      string `gorm:"size:255" json:"filename,omitempty"`
	FileURL       string `gorm:"size:512" json:"file_url,omitempty"`
	CreatedCount  int    `gorm:"not null;default:0" json:"created_count"`
	RejectedCount int    `gorm:"not null;default:0" json:"rejected_count"`
}

func (StudentImport) TableName() string {
	return "student_imports"
}
