package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/config"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/handlers"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/middlewares"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/pdf"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	auth := handlers.NewAuthHandler(db, cfg, log)
	leave := handlers.NewLeaveHandler(db, pdf.NewGenerator(cfg.PDFDir, "/pdfs"), log)

	e.GET("/health", handlers.Health)

	// ===== Student auth =====
	e.POST("/api/signup", auth.Signup)
	e.POST("/login", auth.Login)
	e.GET("/api/me", auth.Me, middlewares.RequireAuth(cfg.JWTSecret))

	// ===== Leave requests =====
	e.POST("/apply-leave", leave.Apply)
	e.GET("/api/my-leaves", leave.MyLeaves)
	e.GET("/api/generate-pdf/:id", leave.GeneratePDF)

	// ===== Admin (shared-secret header) =====
	admin := e.Group("/api", middlewares.RequireAdminSecret(cfg.AdminSecret))
	admin.GET("/leaves", leave.ListAll)
	admin.POST("/leaves/:id/approve", leave.Approve)
	admin.POST("/leaves/:id/reject", leave.Reject)

	// generated certificates
	e.Static("/pdfs", cfg.PDFDir)
}
