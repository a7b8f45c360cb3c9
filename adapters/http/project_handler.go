package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	projectUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/project"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
	"github.com/sammy-mbugua/portfolio/pkg/pagination"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
	getProjectUseCase    *projectUC.GetProjectUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
	uploadImageUseCase   *projectUC.UploadImageUseCase
	storage              service.BlobStorage
	logger               logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	uploadUC *projectUC.UploadImageUseCase,
	storage service.BlobStorage,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		listProjectsUseCase:  listUC,
		getProjectUseCase:    getUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
		uploadImageUseCase:   uploadUC,
		storage:              storage,
		logger:               log,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), projectUC.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Featured:     req.Featured,
		Order:        req.Order,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProjectDTO(output.Project, h.storage))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), projectUC.UpdateProjectInput{
		ProjectID:    projectID,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Featured:     req.Featured,
		Order:        req.Order,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project, h.storage))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), projectUC.DeleteProjectInput{ProjectID: projectID}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), projectUC.GetProjectInput{ProjectID: projectID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project, h.storage))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), projectUC.ListProjectsInput{
		Page: pagination.ParseNumber(c.DefaultQuery("page", "1")),
	})
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p, h.storage)
	}
	c.JSON(http.StatusOK, ProjectListDTO{Projects: dtos, Pagination: output.Page})
}

func (h *ProjectHandler) UploadImage(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		c.Error(apperror.NewInvalidInput("file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("cannot open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadImageUseCase.Execute(c.Request.Context(), projectUC.UploadImageInput{
		ProjectID: projectID,
		File:      file,
		Filename:  fileHeader.Filename,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project, h.storage))
}
