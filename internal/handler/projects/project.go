// File: internal/handler/projects/project.go
package projects

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"project-registry/internal/api"
	"project-registry/internal/database"
	"project-registry/internal/middleware"
	"project-registry/internal/model"
	"project-registry/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	createProject = service.CreateProject
	getProject    = service.GetProject
	listProjects  = service.ListProjects
	updateProject = service.UpdateProject
	deleteProject = service.DeleteProject
)

const dateLayout = "2006-01-02"

func toResponse(p model.Project) api.ProjectResponse {
	return api.ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		ExpirationDate: p.ExpirationDate.Format(dateLayout),
		OwnerID:        p.OwnerID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func projectID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("project_id"))
}

// CreateProjectHandler 建立專案，owner 一律為當前使用者
// @Summary     Create a project
// @Description 建立由當前使用者擁有的專案
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateProjectRequest true "專案資料"
// @Success     201 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		expiration, err := time.Parse(dateLayout, req.ExpirationDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid expiration_date"})
		}

		p, err := createProject(c.Request().Context(), db, user.ID, req.Name, req.Description, expiration)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(*p))
	}
}

// ListProjectsHandler 列出當前使用者擁有的專案
// @Summary     List projects
// @Description 只回傳當前使用者擁有的專案，依建立時間新到舊
// @Tags        projects
// @Produce     json
// @Success     200 {array} api.ProjectResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		ps, err := listProjects(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.ProjectResponse, 0, len(ps))
		for _, p := range ps {
			resp = append(resp, toResponse(p))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetProjectHandler 讀取單一專案
// @Summary     Get a project
// @Description 讀取當前使用者擁有的專案；非本人擁有與不存在同樣回 404
// @Tags        projects
// @Produce     json
// @Param       project_id path int true "專案 ID"
// @Success     200 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{project_id} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := projectID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}
		p, err := getProject(c.Request().Context(), db, id, user.ID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: service.ErrNotFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(*p))
	}
}

// UpdateProjectHandler 部分更新專案
// @Summary     Update a project
// @Description 只覆寫 payload 出現的欄位，未出現的欄位保留原值
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       project_id path int true "專案 ID"
// @Param       payload body api.UpdateProjectRequest true "更新欄位"
// @Success     200 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{project_id} [patch]
func UpdateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := projectID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		var req api.UpdateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var expiration *time.Time
		if req.ExpirationDate != nil {
			t, err := time.Parse(dateLayout, *req.ExpirationDate)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid expiration_date"})
			}
			expiration = &t
		}

		p, err := updateProject(c.Request().Context(), db, id, user.ID, req.Name, req.Description, expiration)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: service.ErrNotFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(*p))
	}
}

// DeleteProjectHandler 刪除專案
// @Summary     Delete a project
// @Description 刪除當前使用者擁有的專案；非本人擁有與不存在同樣回 404
// @Tags        projects
// @Param       project_id path int true "專案 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{project_id} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := projectID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}
		if err := deleteProject(c.Request().Context(), db, id, user.ID); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: service.ErrNotFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
