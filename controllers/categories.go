package controllers

import (
	"net/http"

	"github.com/Lina4Life/passionart-sub002/database"
	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/utils"
)

// CategoryListHandler lists active categories posts can be filed under.
func CategoryListHandler(w http.ResponseWriter, r *http.Request) {
	var categories []models.Category
	if err := database.DB.
		Where("status = ?", "Active").
		Order("name ASC").
		Find(&categories).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "DB error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Categories retrieved",
		Data:    map[string]interface{}{"categories": categories},
	})
}
