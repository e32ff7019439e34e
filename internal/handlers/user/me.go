package user

import (
	"net/http"

	"airsense/internal/middleware"
	"airsense/internal/store"
	"airsense/internal/utils"
)

type MeHandler struct {
	Store store.Store
}

// ServeHTTP handles GET /api/auth/me
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	u, err := h.Store.FindByID(r.Context(), userID)
	if err == store.ErrNotFound {
		// Token outlived the account.
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	} else if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Internal error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User details retrieved successfully",
		Data:    map[string]interface{}{"user": u},
	})
}
