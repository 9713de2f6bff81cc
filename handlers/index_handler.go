package handlers

import "net/http"

func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User API Server is running",
		"endpoints": map[string]string{
			"createUser":       "POST /user/create",
			"loginUser":        "POST /user/login",
			"updateUser":       "PUT /user/edit",
			"deleteUser":       "DELETE /user/delete",
			"getAllUsers":      "GET /user/getAll",
			"uploadImage":      "POST /user/uploadImage",
			"listUsers":        "GET /api/users",
			"createJob":        "POST /api/create/job",
			"getAllJobs":       "GET /api/jobs",
			"exportJobsPDF":    "GET /api/jobs/pdf",
			"companyImages":    "GET /api/companies/images",
			"getOrganization":  "GET /api/organization",
			"saveOrganization": "POST /api/organization",
		},
	})
}
