package http

import (
	"github.com/labstack/echo/v4"

	middleware "digiwork-hub.com/digiwork-hub/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, authenticator middleware.Authenticator) {
	api := e.Group("/api")

	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/forgot-password", h.ForgotPassword)
	api.POST("/auth/reset-password", h.ResetPassword)

	r := api.Group("", middleware.Authenticate(authenticator))

	r.GET("/files/:dir/:name", h.ServeFile)

	r.POST("/users/me/image", h.UploadImage)
	r.PUT("/users/me/name", h.ChangeUserName)
	r.PUT("/users/me/role", h.ChangeUserRole)
	r.PUT("/users/me/password", h.ChangeUserPassword)
	r.PUT("/users/me/notification-token", h.UpdateNotificationToken)
	r.DELETE("/users/me", h.DeleteUser)
	r.GET("/users", h.SearchUsers)
	r.GET("/users/:id", h.GetUser)

	r.POST("/tasks", h.CreateTask)
	r.GET("/tasks/assigned", h.ListAssignedTasks)
	r.GET("/tasks/created", h.ListCreatedTasks)
	r.GET("/tasks/:id", h.GetTask)
	r.PUT("/tasks/:id/status", h.ChangeTaskStatus)
	r.PUT("/tasks/:id/assignees", h.EditTaskAssignees)
	r.PUT("/tasks/:id/due", h.ChangeTaskDue)
	r.PUT("/tasks/:id/priority", h.ChangeTaskPriority)
	r.PUT("/tasks/:id/type", h.ChangeTaskType)
	r.PUT("/tasks/:id/title", h.ChangeTaskTitle)
	r.PUT("/tasks/:id/description", h.ChangeTaskDescription)
	r.DELETE("/tasks/:id", h.DeleteTask)

	r.POST("/tasks/:id/subtasks", h.CreateSubtask)
	r.POST("/tasks/:id/checklists", h.CreateChecklist)
	r.POST("/tasks/:id/comments", h.CreateComment)
	r.POST("/tasks/:id/attachments", h.UploadAttachment)

	r.PUT("/subtasks/:id/status", h.ChangeSubtaskStatus)
	r.PUT("/subtasks/:id/assignees", h.EditSubtaskAssignees)
	r.PUT("/subtasks/:id/due", h.ChangeSubtaskDue)
	r.PUT("/subtasks/:id/priority", h.ChangeSubtaskPriority)
	r.PUT("/subtasks/:id/type", h.ChangeSubtaskType)
	r.PUT("/subtasks/:id/title", h.ChangeSubtaskTitle)
	r.PUT("/subtasks/:id/description", h.ChangeSubtaskDescription)
	r.DELETE("/subtasks/:id", h.DeleteSubtask)

	r.PUT("/checklists/:id/toggle", h.ToggleChecklist)
	r.DELETE("/checklists/:id", h.DeleteChecklist)

	r.PUT("/comments/:id/like", h.ToggleCommentLike)
	r.DELETE("/comments/:id", h.DeleteComment)

	r.GET("/attachments/:id/download", h.DownloadAttachment)
	r.DELETE("/attachments/:id", h.DeleteAttachment)

	r.POST("/messages", h.SendMessage)
	r.GET("/messages/sent", h.ListSentMessages)
	r.GET("/messages/received", h.ListReceivedMessages)
	r.GET("/messages/:id", h.GetMessage)
	r.POST("/messages/:id/replies", h.ReplyMessage)
	r.PUT("/messages/:id/hide", h.HideMessage)
	r.DELETE("/messages/:id", h.DeleteMessage)
	r.DELETE("/replies/:id", h.DeleteReply)
}
