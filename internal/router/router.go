package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/KwonOil/easyplanner/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Project *apiHandler.ProjectHandler
	Task    *apiHandler.TaskHandler
	Comment *apiHandler.CommentHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/register", handlers.Auth.Register)
	r.POST("/login", handlers.Auth.Login)
	r.POST("/logout", authMiddleware(handlers.Auth.Logout))

	// Projects
	r.GET("/api/projects", authMiddleware(handlers.Project.List))
	r.POST("/projects/create", authMiddleware(handlers.Project.Create))
	r.POST("/projects/{id}/delete", authMiddleware(handlers.Project.Delete))
	r.POST("/api/project/{id}/edit", authMiddleware(handlers.Project.Edit))
	r.POST("/api/project/{id}/invite", authMiddleware(handlers.Project.Invite))
	r.GET("/api/project/{id}/stats", authMiddleware(handlers.Project.Stats))
	r.GET("/api/project/{id}/chartjs-data", authMiddleware(handlers.Project.ChartData))

	// Tasks
	r.GET("/api/project/{project_id}/tasks", authMiddleware(handlers.Task.List))
	r.POST("/project/{project_id}/tasks/create", authMiddleware(handlers.Task.Create))
	r.POST("/api/task/{id}/edit", authMiddleware(handlers.Task.Edit))
	r.POST("/tasks/{id}/update-status", authMiddleware(handlers.Task.UpdateStatus))
	r.POST("/api/task/{id}/assign", authMiddleware(handlers.Task.Assign))
	r.POST("/tasks/{id}/delete", authMiddleware(handlers.Task.Delete))

	// Comments
	r.GET("/api/task/{task_id}/comments", authMiddleware(handlers.Comment.List))
	r.POST("/api/task/{task_id}/comments/add", authMiddleware(handlers.Comment.Add))
	r.POST("/api/comment/{id}/edit", authMiddleware(handlers.Comment.Edit))
	r.POST("/api/comments/{id}/delete", authMiddleware(handlers.Comment.Delete))

	return r
}
