package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EGC-hub/Website-repo-dev/constants"
	"github.com/EGC-hub/Website-repo-dev/controllers"
	"github.com/EGC-hub/Website-repo-dev/middleware"
	"github.com/EGC-hub/Website-repo-dev/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	authController := controllers.AuthController{DB: db}
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)

	api := r.Group("")
	api.Use(middleware.AuthMiddleware())

	userController := controllers.UserController{DB: db}
	api.GET("/users", middleware.RoleMiddleware(constants.RoleAdmin), userController.GetUsers)
	api.PUT("/users/:id", middleware.RoleMiddleware(constants.RoleAdmin), userController.UpdateUser)

	taskController := controllers.TaskController{DB: db}
	api.POST("/tasks", middleware.RoleMiddleware(constants.RoleAdmin, constants.RoleManager), taskController.CreateTask)
	api.GET("/tasks", taskController.GetTasks)
	api.GET("/tasks/:id", taskController.GetTask)
	api.GET("/tasks/:id/timeline", taskController.GetTimeline)

	statusController := controllers.StatusController{
		DB:    db,
		Blobs: utils.DiskBlobStore{Dir: uploadDir()},
	}
	api.POST("/tasks/:id/status", statusController.UpdateStatus)

	return r
}

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}
