package app

import (
	"attendance_backend/docs"
	"attendance_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		a.registerClassRoutes(api, c)
		a.registerStudentRoutes(api, c)
		a.registerSessionRoutes(api, c)
		a.registerAttendanceRoutes(api, c)
	}
}

// 班级与分组，分组按所属班级嵌套
func (a *App) registerClassRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/groups", c.group.ListAllGroups)

	classes := rg.Group("/classes")
	{
		classes.GET("", c.class.ListClasses)
		classes.POST("", c.class.CreateClass)
		classes.GET("/:classId", c.class.GetClass)
		classes.PUT("/:classId", c.class.UpdateClass)
		classes.DELETE("/:classId", c.class.DeleteClass)

		classes.GET("/:classId/groups", c.group.ListGroups)
		classes.POST("/:classId/groups", c.group.CreateGroup)
		classes.GET("/:classId/groups/:groupId", c.group.GetGroup)
		classes.PUT("/:classId/groups/:groupId", c.group.UpdateGroup)
		classes.DELETE("/:classId/groups/:groupId", c.group.DeleteGroup)
	}
}

// GET 下 :groupId 表示分组，PUT/DELETE 下 :studentId 表示学生
func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	students := rg.Group("/students")
	{
		students.POST("", c.student.CreateStudent)
		students.POST("/import", c.student.ImportList)

		students.GET("/:groupId", c.student.ListStudents)
		students.POST("/:groupId/import", c.student.ImportToGroup)
		students.GET("/:groupId/imports", c.student.ListImports)

		students.PUT("/:studentId", c.student.UpdateStudent)
		students.DELETE("/:studentId", c.student.DeleteStudent)
	}
}

func (a *App) registerSessionRoutes(rg *gin.RouterGroup, c *controllers) {
	sessions := rg.Group("/groups/:groupId/session")
	{
		sessions.GET("", c.session.ListSessions)
		sessions.POST("", c.session.CreateSession)
		sessions.GET("/:sessionId", c.session.GetSession)
		sessions.PUT("/:sessionId", c.session.UpdateSession)
		sessions.DELETE("/:sessionId", c.session.DeleteSession)
	}
}

func (a *App) registerAttendanceRoutes(rg *gin.RouterGroup, c *controllers) {
	attendances := rg.Group("/session/:sessionId/attendances")
	{
		attendances.GET("", c.attendance.ListAttendances)
		attendances.POST("", c.attendance.MarkAttendance)
		attendances.PUT("/:attendanceId", c.attendance.UpdateAttendance)
		attendances.DELETE("/:attendanceId", c.attendance.DeleteAttendance)
	}
}
