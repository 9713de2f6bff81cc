package handlers

import (
	"errors"
	"net/http"

	"jobportal/models"
	"jobportal/repository"
	"jobportal/validation"
)

type OrganizationHandler struct {
	Repo      repository.OrganizationRepository
	Validator *validation.Validator
}

func (h *OrganizationHandler) SaveOrganization(w http.ResponseWriter, r *http.Request) {
	var org models.Organization
	if err := decodeRequest(r, &org); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	org.ID = ""

	if err := h.Validator.Struct(&org); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, msgValidationFailed, verr.Details()...)
			return
		}
		writeInternal(w, r, "validate organization", err)
		return
	}

	if err := h.Repo.SaveOrganization(r.Context(), &org); err != nil {
		writeInternal(w, r, "save organization", err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	org, err := h.Repo.GetOrganization(r.Context())
	if err != nil {
		writeInternal(w, r, "get organization", err)
		return
	}
	if org == nil {
		writeError(w, http.StatusNotFound, "Organization details not found")
		return
	}
	writeJSON(w, http.StatusOK, org)
}
