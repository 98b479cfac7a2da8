package controllers

import (
	"DineWheel/services"
	"DineWheel/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	HistoryService *services.HistoryService
}

func NewHistoryController(historyService *services.HistoryService) *HistoryController {
	return &HistoryController{
		HistoryService: historyService,
	}
}

// GetAllHistory returns the full log, newest first
func (h *HistoryController) GetAllHistory(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "History fetched successfully", h.HistoryService.Entries())
}

// GetHistoryByIndex returns a single entry by its position in the log
func (h *HistoryController) GetHistoryByIndex(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid history index")
		return
	}

	entry, err := h.HistoryService.Get(index)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "History entry fetched successfully", entry)
}
