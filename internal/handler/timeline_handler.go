package handlers

import (
	"net/http"
	"strconv"

	"shopmap/internal/service"
)

// GetTimeline serves the ranked feed. Query parameters: filter (all|following,
// default all), page (default 1), lat/lon (optional viewer location, both or
// neither).
func (h *Handlers) GetTimeline(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()

	filter := service.TimelineFilter(query.Get("filter"))

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, "Invalid page number", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	var location *service.Location
	latRaw, lonRaw := query.Get("lat"), query.Get("lon")
	if latRaw != "" || lonRaw != "" {
		if latRaw == "" || lonRaw == "" {
			WriteError(w, "Both lat and lon are required for location ranking", http.StatusBadRequest)
			return
		}
		lat, errLat := strconv.ParseFloat(latRaw, 64)
		lon, errLon := strconv.ParseFloat(lonRaw, 64)
		if errLat != nil || errLon != nil {
			WriteError(w, "Invalid coordinates", http.StatusBadRequest)
			return
		}
		location = &service.Location{Latitude: lat, Longitude: lon}
	}

	timeline, err := h.TimelineService.GetTimeline(r.Context(), service.TimelineRequest{
		ViewerID: viewerID,
		Filter:   filter,
		Page:     page,
		Location: location,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, timeline, http.StatusOK)
}
