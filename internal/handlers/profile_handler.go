package handlers

import (
	"autorent/internal/middleware"
	"autorent/internal/services"
	"autorent/internal/utils"
	"autorent/internal/validators"
	"autorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
	logger         *logger.Logger
}

func NewProfileHandler(profileService services.ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         log,
	}
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	avatarURL, err := h.profileService.AvatarURL(c.Request.Context(), profile)
	if err != nil {
		h.logger.WithUserID(userID).WithError(err).Warn("failed to sign avatar URL")
	}

	utils.SuccessResponse(c, "Profile retrieved", gin.H{
		"profile":    profile,
		"avatar_url": avatarURL,
	})
}

// UpdateProfile handles PUT /profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateUpdateProfileRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req.Email, req.PhoneNumber)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile updated", profile)
}

// UploadAvatar handles POST /profile/avatar as a multipart upload.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		utils.BadRequestResponse(c, "avatar file is required")
		return
	}
	if fileHeader.Size > utils.MaxImageSize {
		utils.BadRequestResponse(c, "avatar file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	key, err := h.profileService.UploadAvatar(c.Request.Context(), userID, file, fileHeader.Filename)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Avatar updated", gin.H{"avatar_key": key})
}

// RemoveAvatar handles DELETE /profile/avatar.
func (h *ProfileHandler) RemoveAvatar(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.profileService.RemoveAvatar(c.Request.Context(), userID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Avatar removed", nil)
}
