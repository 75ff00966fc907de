package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	var dialector gorm.Dialector

	if dsn := os.Getenv("SQLITE_DSN"); dsn != "" {
		dialector = sqlite.Open(dsn)
	} else {
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			name := os.Getenv("DB_NAME")
			if name == "" {
				name = "taskdbgo"
			}
			dsn = fmt.Sprintf("admin:12345678@tcp(127.0.0.1:3306)/%s?charset=utf8mb4&parseTime=True&loc=Local", name)
		}
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database")
	}
	return db
}
