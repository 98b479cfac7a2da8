package controllers

import (
	"DineWheel/config/environment"
	"DineWheel/models"
	"DineWheel/services"
	"DineWheel/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WheelController struct {
	WheelService    *services.WheelService
	SettingsService *services.SettingsService
	HistoryService  *services.HistoryService
}

// NewWheelController wires the controller to the shared services. The
// wheel and history services carry session state, so one instance of each
// is shared across controllers.
func NewWheelController(wheelService *services.WheelService, settingsService *services.SettingsService, historyService *services.HistoryService) *WheelController {
	return &WheelController{
		WheelService:    wheelService,
		SettingsService: settingsService,
		HistoryService:  historyService,
	}
}

type buildWheelRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type addOptionRequest struct {
	Index *int `json:"index"`
}

// BuildWheel fetches nearby restaurants for the given coordinate and
// rebuilds the wheel using the stored settings
func (w *WheelController) BuildWheel(c *gin.Context) {
	var req buildWheelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	userID := environment.GetUserID()
	settings, err := w.SettingsService.GetSettings(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	state, err := w.WheelService.FetchAndBuildWheel(c, *req.Latitude, *req.Longitude, settings)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Wheel built successfully", state)
}

// GetWheel returns the current wheel options
func (w *WheelController) GetWheel(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Wheel fetched successfully", w.WheelService.State())
}

// Spin draws a winner from the current wheel and records it in history
func (w *WheelController) Spin(c *gin.Context) {
	winner, err := w.WheelService.Spin()
	if err != nil {
		c.Error(err)
		return
	}

	result := gin.H{"winner": winner}
	if candidate, ok := w.WheelService.CandidateByName(winner.Name); ok {
		entry := w.HistoryService.Append(c, environment.GetUserID(), candidate)
		result["candidate"] = candidate
		result["history_entry"] = entry
	}

	utils.SuccessResponse(c, http.StatusOK, "Wheel spun successfully", result)
}

// AddOption re-injects a history entry into the wheel
func (w *WheelController) AddOption(c *gin.Context) {
	var req addOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "history index is required")
		return
	}

	entry, err := w.HistoryService.Get(*req.Index)
	if err != nil {
		c.Error(err)
		return
	}

	state := w.WheelService.AddOption(models.WheelOption{
		Name:   entry.Candidate.Name,
		MapURL: entry.Candidate.MapURL,
	})

	utils.SuccessResponse(c, http.StatusOK, "Option added to wheel", state)
}
