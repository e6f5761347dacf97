package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/handlers"
	"taskboard/repositories"
	"taskboard/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "This is home route")
	})

	projects := r.Group("/projects")
	{
		projects.GET("", handlers_instance.Project.GetProjects)
		projects.POST("", handlers_instance.Project.CreateProject)
	}
	tasks := r.Group("/tasks")
	{
		tasks.GET("", handlers_instance.Task.GetTasks)
		tasks.POST("", handlers_instance.Task.CreateTask)
		tasks.PATCH("/:taskId/status", handlers_instance.Task.UpdateTaskStatus)
	}
	r.GET("/users", handlers_instance.User.GetUsers)
	r.GET("/teams", handlers_instance.Team.GetTeams)
	r.GET("/search", handlers_instance.Search.Search)
}
