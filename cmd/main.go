package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/config"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/database"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/routes"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
	return log
}

func main() {
	log := newLogger()
	cfg := config.Load()

	// fail early if the DB is not up
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, db, cfg, log)

	addr := ":" + cfg.AppPort
	log.Infof("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
