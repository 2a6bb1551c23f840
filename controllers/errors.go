package controllers

import (
	"log"
	"net/http"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/utils"
)

// WriteServiceError maps a community workflow error onto an HTTP response.
// Unclassified errors are treated as server faults and logged.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch community.KindOf(err) {
	case community.KindValidation:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
	case community.KindPayment:
		utils.WriteJSON(w, http.StatusPaymentRequired, utils.APIResponse{Success: false, Message: err.Error()})
	case community.KindAuthorization:
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Access denied"})
	case community.KindNotFound:
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: err.Error()})
	case community.KindInvalidState:
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: err.Error()})
	case community.KindSelfVote:
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: err.Error()})
	default:
		log.Printf("[http] service error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
	}
}
