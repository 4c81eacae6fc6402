package handlers

import (
	"course_enrollment/internal/logger"
	"course_enrollment/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.accessLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	h.registerEnrollmentRoutes(router)

	// Bearer-protected endpoints
	h.registerCourseRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/register", h.register)
	r.POST("/login", h.login)
}

func (h *Handler) registerEnrollmentRoutes(r *gin.Engine) {
	r.POST("/enroll", h.enroll)
	r.GET("/enrollments", h.listEnrollments)
}

func (h *Handler) registerCourseRoutes(r *gin.Engine) {
	protected := r.Group("/", h.authMiddleware)
	{
		protected.GET("/courses", h.listCourses)
		protected.GET("/my_courses", h.myCourses)
	}
}
