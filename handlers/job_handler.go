package handlers

import (
	"errors"
	"net/http"
	"strings"

	"jobportal/logger"
	"jobportal/models"
	"jobportal/repository"
	"jobportal/validation"
)

type JobHandler struct {
	Repo      repository.JobRepository
	Validator *validation.Validator
}

// CreateJob publishes a posting. Routed behind the admin check.
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := decodeRequest(r, &job); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	job.ID = ""
	job.CompanyName = strings.TrimSpace(job.CompanyName)
	job.JobTitle = strings.TrimSpace(job.JobTitle)
	job.Description = strings.TrimSpace(job.Description)

	if err := h.Validator.Struct(&job); err != nil {
		var verr *validation.ValidationError
		switch {
		case errors.As(err, &verr) && verr.FailedOn("required"):
			writeError(w, http.StatusBadRequest, "All fields are required",
				"companyName, jobTitle, description, and salary are required")
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, msgValidationFailed, verr.Details()...)
		default:
			writeInternal(w, r, "validate job", err)
		}
		return
	}

	if err := h.Repo.CreateJob(r.Context(), &job); err != nil {
		logger.FromContext(r.Context()).Error("error creating job", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Job created successfully",
		"job":     job,
	})
}

// GetAllJobs lists postings newest first.
func (h *JobHandler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Repo.ListJobs(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("error fetching jobs", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error", err.Error())
		return
	}
	if jobs == nil {
		jobs = []*models.Job{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Jobs fetched successfully",
		"count":   len(jobs),
		"jobs":    jobs,
	})
}
