package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/handlers"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userHandler := handlers.NewUserHandler(db)
	authorHandler := handlers.NewAuthorHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	publicationHandler := handlers.NewPublicationHandler(db)
	libraryHandler := handlers.NewLibraryHandler(db)
	typeHandler := handlers.NewTypeHandler(db)

	r.GET("/health", handlers.HealthCheck)

	users := r.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	authors := r.Group("/authors")
	{
		authors.GET("", authorHandler.List)
		authors.GET("/:id", authorHandler.Get)
		authors.POST("", authorHandler.Create)
		authors.PUT("/:id", authorHandler.Update)
		authors.DELETE("/:id", authorHandler.Delete)
	}

	projects := r.Group("/projects")
	{
		projects.GET("", projectHandler.List)
		projects.GET("/by-type/:typeId", projectHandler.ListByType)
		projects.GET("/:id", projectHandler.Get)
		projects.POST("", projectHandler.Create)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}

	publications := r.Group("/publications")
	{
		publications.GET("", publicationHandler.List)
		publications.GET("/by-type/:typeId", publicationHandler.ListByType)
		publications.GET("/:id", publicationHandler.Get)
		publications.POST("", publicationHandler.Create)
		publications.PUT("/:id", publicationHandler.Update)
		publications.DELETE("/:id", publicationHandler.Delete)
	}

	library := r.Group("/e-library")
	{
		library.GET("", libraryHandler.List)
		library.GET("/:id", libraryHandler.Get)
		library.POST("", libraryHandler.Create)
		library.PUT("/:id", libraryHandler.Update)
		library.DELETE("/:id", libraryHandler.Delete)
	}

	r.GET("/project-types", typeHandler.ListProjectTypes)
	r.GET("/publication-types", typeHandler.ListPublicationTypes)

	return r
}
