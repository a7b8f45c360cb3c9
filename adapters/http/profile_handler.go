package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	profileUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

const uploadField = "file"

type uploadFunc func(context.Context, profileUC.UploadInput) (*profile.Profile, error)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	storage        service.BlobStorage
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, storage service.BlobStorage, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, storage: storage, logger: log}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	out, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(out.Profile, h.storage))
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	out, err := h.profileUseCase.ExecuteSaveProfile(c.Request.Context(), profileUC.SaveProfileInput{
		Name:        req.Name,
		Title:       req.Title,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		GithubURL:   req.GithubURL,
		LinkedinURL: req.LinkedinURL,
		About:       req.About,
	})
	if err != nil {
		c.Error(err)
		return
	}
	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	c.JSON(status, ToProfileDTO(out.Profile, h.storage))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}
	if err := h.profileUseCase.ExecuteDeleteProfile(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	h.upload(c, h.profileUseCase.ExecuteUploadImage)
}

func (h *ProfileHandler) UploadResume(c *gin.Context) {
	h.upload(c, h.profileUseCase.ExecuteUploadResume)
}

func (h *ProfileHandler) upload(c *gin.Context, exec uploadFunc) {
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

	p, err := exec(c.Request.Context(), profileUC.UploadInput{File: file, Filename: fileHeader.Filename})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p, h.storage))
}
