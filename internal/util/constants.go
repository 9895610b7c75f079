package util

const (
	DateFormat      = "2006-01-02"
	ClockFormat     = "15:04"
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 导入文件相关
const (
	ImportFormField  = "file"
	ImportArchiveDir = "imports"
)
