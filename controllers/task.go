package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EGC-hub/Website-repo-dev/constants"
	"github.com/EGC-hub/Website-repo-dev/models"
	"github.com/EGC-hub/Website-repo-dev/utils"
)

type TaskController struct {
	DB *gorm.DB
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	userID, role, ok := currentActor(c)
	if !ok {
		fail(c, ErrUnauthorized)
		return
	}

	var input struct {
		Name              string `json:"name"`
		AssignedUserID    uint   `json:"assigned_user_id"`
		PredecessorTaskID *uint  `json:"predecessor_task_id"`
	}

	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed, err := utils.CanAssignTask(userID, role, input.AssignedUserID, tc.DB)
	if err != nil || !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot assign a task to this user"})
		return
	}

	task := models.Task{
		Name:              input.Name,
		Status:            constants.StatusAssigned,
		AssignedByID:      userID,
		AssignedUserID:    input.AssignedUserID,
		PredecessorTaskID: input.PredecessorTaskID,
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) GetTasks(c *gin.Context) {
	var tasks []models.Task

	tc.DB.Find(&tasks)

	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	userID, role, ok := currentActor(c)
	if !ok {
		fail(c, ErrUnauthorized)
		return
	}

	id := c.Param("id")

	var task models.Task

	if err := tc.DB.First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !utils.CanAccessTask(task, userID, role, tc.DB) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTimeline returns the append-only audit trail for a task, oldest first.
func (tc *TaskController) GetTimeline(c *gin.Context) {
	id := c.Param("id")

	var task models.Task
	if err := tc.DB.First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var events []models.TimelineEvent
	tc.DB.Where("task_id = ?", task.ID).Order("id asc").Find(&events)

	c.JSON(http.StatusOK, events)
}
