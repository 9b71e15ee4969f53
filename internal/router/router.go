// File: internal/router/router.go
package router

import (
	"project-registry/internal/cache"
	"project-registry/internal/database"
	"project-registry/internal/handler"
	"project-registry/internal/handler/auth"
	"project-registry/internal/handler/projects"
	"project-registry/internal/handler/users"
	"project-registry/internal/middleware"
	"project-registry/internal/service"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, codec *service.TokenCodec) {
	api := e.Group("/api")
	resolver := service.NewResolver(codec)
	requireAuth := middleware.RequireAuth(db, resolver)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, rdb, codec))

	// 當前使用者
	apiUsersMe := api.Group("/users/me", requireAuth)
	apiUsersMe.GET("", users.GetMyUserHandler(rdb))
	apiUsersMe.DELETE("", users.DeleteMyUserHandler(db))

	// 專案 CRUD，全部限定在呼叫者擁有的資料範圍
	apiProjects := api.Group("/projects", requireAuth)
	apiProjects.POST("", projects.CreateProjectHandler(db))
	apiProjects.GET("", projects.ListProjectsHandler(db))
	apiProjects.GET("/:project_id", projects.GetProjectHandler(db))
	apiProjects.PATCH("/:project_id", projects.UpdateProjectHandler(db))
	apiProjects.DELETE("/:project_id", projects.DeleteProjectHandler(db))
}
