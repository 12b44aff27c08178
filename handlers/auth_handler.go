package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/auth"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/config"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/middlewares"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/models"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
	Log       *logrus.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{DB: db, JWTSecret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL, Log: log}
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Hostel   string `json:"hostel"`
	Year     string `json:"year"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Hostel = strings.TrimSpace(req.Hostel)
	req.Year = strings.TrimSpace(req.Year)
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Hostel == "" || req.Year == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "all fields are required"})
	}

	var dup models.Student
	if err := h.DB.Where("email = ?", req.Email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "email already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.Log.WithError(err).Error("signup: lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Log.WithError(err).Error("signup: hash failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	student := models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Hostel:   req.Hostel,
		Year:     req.Year,
	}
	if err := h.DB.Create(&student).Error; err != nil {
		h.Log.WithError(err).Error("signup: insert failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	token, err := auth.SignToken(h.JWTSecret, student.ID, student.Email, h.TokenTTL)
	if err != nil {
		h.Log.WithError(err).Error("signup: token signing failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token":   token,
		"student": student.Profile(),
	})
}

// POST /login
//
// Login intentionally returns only the profile, no token; see README.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "email and password are required"})
	}

	// one generic message for unknown email and bad password
	var student models.Student
	if err := h.DB.Where("email = ?", email).First(&student).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "invalid email or password"})
	}
	if err := auth.CheckPassword(student.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "invalid email or password"})
	}

	return c.JSON(http.StatusOK, map[string]any{"student": student.Profile()})
}

// GET /api/me
func (h *AuthHandler) Me(c echo.Context) error {
	id, ok := middlewares.StudentID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "invalid or expired token"})
	}

	var student models.Student
	if err := h.DB.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "student not found"})
		}
		h.Log.WithError(err).Error("me: lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	return c.JSON(http.StatusOK, map[string]any{"student": student.Profile()})
}
