package routes

import (
	"log/slog"
	"net/http"

	"jobportal/auth"
	"jobportal/handlers"
	"jobportal/models"
)

type Handlers struct {
	User         *handlers.UserHandler
	Job          *handlers.JobHandler
	Organization *handlers.OrganizationHandler
	PDF          *handlers.PDFHandler
	Images       *handlers.ImageHandler
	Tokens       *auth.TokenIssuer
}

type Options struct {
	CORSOrigin string
	// ImagesDir is served under /images/ when set (local image storage).
	ImagesDir string
	Logger    *slog.Logger
}

// withCORS allows the single configured front-end origin with credentials.
func withCORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Add("Vary", "Origin")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, handlers.RecoverWrapper(fn))
	}
	adminOnly := handlers.RequireRole(h.Tokens, models.UserTypeAdmin)

	// User routes, mounted at /user, /api/user and directly under /api
	for _, prefix := range []string{"/user", "/api/user", "/api"} {
		handle("POST "+prefix+"/create", h.User.Create)
		handle("POST "+prefix+"/login", h.User.Login)
		handle("PUT "+prefix+"/edit", h.User.Edit)
		handle("DELETE "+prefix+"/delete", h.User.Delete)
		handle("GET "+prefix+"/getAll", h.User.GetAll)
		handle("POST "+prefix+"/uploadImage", h.User.UploadImage)
	}
	handle("GET /api/users", h.User.List)

	// Job routes
	handle("POST /api/create/job", adminOnly(h.Job.CreateJob))
	handle("GET /api/jobs", h.Job.GetAllJobs)
	handle("GET /api/jobs/pdf", h.PDF.JobsPDF)

	// Portal routes
	handle("GET /api/companies/images", h.Images.CompanyImages)
	handle("GET /api/organization", h.Organization.GetOrganization)
	handle("POST /api/organization", adminOnly(h.Organization.SaveOrganization))
	handle("GET /{$}", handlers.Index)

	if opts.ImagesDir != "" {
		mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(opts.ImagesDir))))
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return withCORS(opts.CORSOrigin, withRequestLogging(log, mux))
}
