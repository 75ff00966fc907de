package main

import (
	"github.com/EGC-hub/Website-repo-dev/config"
	"github.com/EGC-hub/Website-repo-dev/models"
	"github.com/EGC-hub/Website-repo-dev/routes"
)

func main() {
	db := config.ConnectDB()
	db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.TimelineEvent{},
		&models.DelayRecord{},
		&models.TaskAttachment{},
	)
	r := routes.SetupRouter(db)
	r.Run(":8000")
}
