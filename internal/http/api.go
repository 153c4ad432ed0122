package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth    service.AuthService
	tasks   service.TaskService
	users   service.UserService
	tokens  *auth.TokenIssuer
	cookies CookieConfig
	origin  string
}

func NewHandler(authSvc service.AuthService, tasks service.TaskService, users service.UserService, tokens *auth.TokenIssuer, cookies CookieConfig, corsOrigin string) *Handler {
	return &Handler{
		auth:    authSvc,
		tasks:   tasks,
		users:   users,
		tokens:  tokens,
		cookies: cookies,
		origin:  corsOrigin,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.corsMiddleware())

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.logout)
		authGroup.GET("/is-auth", h.requireAuth(), h.isAuthenticated)
		authGroup.POST("/send-reset-otp", h.sendResetOtp)
		authGroup.POST("/reset-password", h.resetPassword)
	}

	userGroup := router.Group("/api/user", h.requireAuth())
	{
		userGroup.GET("/data", h.getUserData)
		userGroup.PUT("/update", h.updateProfile)
	}

	taskGroup := router.Group("/api/tasks", h.requireAuth())
	{
		taskGroup.POST("/create", h.createTask)
		taskGroup.GET("/all", h.listTasks)
		taskGroup.PUT("/update/:id", h.updateTask)
		taskGroup.DELETE("/delete/:id", h.deleteTask)
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

// Cookies carry the session token, so CORS must name the SPA origin
// explicitly and allow credentials. A wildcard origin would make browsers
// drop the cookie.
func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", h.origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type userDataResponse struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	IsAccountVerified bool   `json:"isAccountVerified"`
}

func (h *Handler) getUserData(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"userData": userToResponse(user),
	})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Name and email are required"})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), currentUserID(c), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Name and email are required"})
		case errors.Is(err, service.ErrEmailInUse):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Email already in use"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Profile updated successfully",
		"userData": userToResponse(user),
	})
}

func userToResponse(user *domain.User) userDataResponse {
	return userDataResponse{
		Name:              user.Name,
		Email:             user.Email,
		IsAccountVerified: user.IsVerified,
	}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), currentUserID(c), req.Title, req.Description, domain.TaskStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "task": taskToResponse(task)})
}

func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.tasks.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	resp := make([]taskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": resp})
}

func (h *Handler) updateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	patch := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.tasks.Update(c.Request.Context(), c.Param("id"), currentUserID(c), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Task not found"})
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "task": taskToResponse(task)})
}

func (h *Handler) deleteTask(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted"})
}

func taskToResponse(task *domain.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
