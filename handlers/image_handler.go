package handlers

import (
	"net/http"

	"jobportal/utils"
)

type ImageHandler struct {
	Images utils.ImageStore
}

// CompanyImages lists stored images as {name, imageUrl} cards.
func (h *ImageHandler) CompanyImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.Images.List(r.Context())
	if err != nil {
		writeInternal(w, r, "list images", err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}
