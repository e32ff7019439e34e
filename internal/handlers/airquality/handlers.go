package airquality

import (
	"net/http"

	"airsense/internal/utils"
)

type CurrentHandler struct{}

// ServeHTTP handles GET /api/airquality/current
func (h *CurrentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loc, msg := parseLocation(r)
	if msg != "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "current reading",
		Data:    StaticReading(loc.Lat, loc.Lon),
	})
}

type ForecastHandler struct{}

// ServeHTTP handles GET /api/airquality/forecast
func (h *ForecastHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, msg := parseLocation(r); msg != "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "6-hour forecast",
		Data:    staticForecast(),
	})
}

type MapHandler struct{}

// ServeHTTP handles GET /api/airquality/map
func (h *MapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loc, msg := parseLocation(r)
	if msg != "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "nearby stations",
		Data:    staticPins(loc),
	})
}

type AlertsHandler struct{}

// ServeHTTP handles GET /api/airquality/alerts
func (h *AlertsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, msg := parseLocation(r); msg != "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "active alerts",
		Data:    staticAlerts(),
	})
}
