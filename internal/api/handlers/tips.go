package handlers

import (
	"net/http"
	"travel-planner-service/internal/api/dto"
)

var studentTips = []string{
	"Book buses/trains early to grab student discounts.",
	"Carry a refillable bottle and small snacks to save money.",
	"Use local markets and street food for cheap, authentic meals.",
	"Travel light: hostel lockers and a packable daypack save money.",
}

func Tips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.TipsResponse{Tips: studentTips})
}
