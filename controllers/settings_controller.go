package controllers

import (
	"DineWheel/config/environment"
	"DineWheel/models"
	"DineWheel/services"
	"DineWheel/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *services.SettingsService
}

func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{
		SettingsService: settingsService,
	}
}

// GetSettings returns the stored preferences, or the defaults
func (s *SettingsController) GetSettings(c *gin.Context) {
	settings, err := s.SettingsService.GetSettings(c, environment.GetUserID())
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings fetched successfully", settings)
}

// SaveSettings validates and stores the preferences
func (s *SettingsController) SaveSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	if err := s.SettingsService.SaveSettings(c, environment.GetUserID(), settings); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings saved successfully", settings)
}
