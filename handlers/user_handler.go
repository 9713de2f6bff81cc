package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"jobportal/auth"
	"jobportal/logger"
	"jobportal/models"
	"jobportal/repository"
	"jobportal/utils"
	"jobportal/validation"
)

const imageField = "image"

type UserHandler struct {
	Repo         repository.UserRepository
	Images       utils.ImageStore
	Tokens       *auth.TokenIssuer
	MaxImageSize int64
	Now          func() time.Time
}

func (h *UserHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

type createUserRequest struct {
	FullName string          `json:"fullName"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Type     models.UserType `json:"type"`
}

// Create registers a new account.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgValidationFailed, "Invalid request payload: "+err.Error())
		return
	}

	if errs := validation.UserCreation(req.FullName, req.Email, req.Password); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, msgValidationFailed, errs...)
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, msgValidationFailed, "User type is required")
		return
	}
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, msgValidationFailed, `Invalid user type. Must be either "admin" or "employee"`)
		return
	}

	ctx := r.Context()
	existing, err := h.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		writeInternal(w, r, "lookup user", err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, msgValidationFailed, "User with this email already exists")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		writeInternal(w, r, "hash password", err)
		return
	}

	user := &models.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    repository.NormalizeEmail(req.Email),
		Password: hashed,
		Type:     req.Type,
	}
	if err := h.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			writeError(w, http.StatusBadRequest, msgValidationFailed, "User with this email already exists")
			return
		}
		writeInternal(w, r, "create user", err)
		return
	}

	logger.FromContext(ctx).Info("user created", "email", user.Email, "type", user.Type)
	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User created successfully."})
}

// Login checks credentials and issues a session token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeRequest(r, &creds); err != nil || creds.Username == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Username and password are required",
		})
		return
	}

	ctx := r.Context()
	log := logger.FromContext(ctx)

	user, err := h.Repo.GetUserByEmail(ctx, creds.Username)
	if err != nil {
		log.Error("login lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Server error during login"})
		return
	}
	if user == nil || !auth.CheckPassword(user.Password, creds.Password) {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		log.Error("issue token failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Server error during login"})
		return
	}

	log.Info("login successful", "email", user.Email)
	summary := user.Summary()
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		User:    &summary,
		Token:   token,
	})
}

// Edit updates the full name and/or password of an account. The email only
// identifies the account and is never changed.
func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		FullName string `json:"fullName"`
		Password string `json:"password"`
	}
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgValidationFailed, "Invalid request payload: "+err.Error())
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, msgValidationFailed, "Email is required to identify the user")
		return
	}

	ctx := r.Context()
	user, err := h.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		writeInternal(w, r, "lookup user", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}

	if errs := validation.UserUpdate(req.FullName, req.Password); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, msgValidationFailed, errs...)
		return
	}

	if req.FullName != "" {
		user.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			writeInternal(w, r, "hash password", err)
			return
		}
		user.Password = hashed
	}

	if err := h.Repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		writeInternal(w, r, "update user", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "User updated successfully."})
}

// Delete removes an account and its profile image.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeRequest(r, &req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, msgValidationFailed, "Email is required to delete the user")
		return
	}

	ctx := r.Context()
	log := logger.FromContext(ctx)

	user, err := h.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		writeInternal(w, r, "lookup user", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}

	if user.HasImage() {
		if err := h.Images.Delete(ctx, *user.ImagePath); err != nil {
			log.Warn("could not delete profile image", "path", *user.ImagePath, "error", err)
		} else {
			log.Info("deleted profile image", "path", *user.ImagePath)
		}
	}

	if err := h.Repo.DeleteUser(ctx, user.Email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		writeInternal(w, r, "delete user", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully."})
}

// GetAll lists every account as {fullName, email, type}.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.ListUsers(r.Context())
	if err != nil {
		writeInternal(w, r, "list users", err)
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": summaries})
}

// List returns full account records without password hashes.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.ListUsers(r.Context())
	if err != nil {
		writeInternal(w, r, "list users", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Users fetched successfully",
		"count":   len(users),
		"users":   users,
	})
}

// UploadImage stores a single profile image for an account that has none yet.
func (h *UserHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	tooLarge := fmt.Sprintf("File size too large. Maximum size is %s.", formatSize(h.MaxImageSize))

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxImageSize+(1<<20))
	if err := r.ParseMultipartForm(h.MaxImageSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, tooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "Upload error: "+err.Error())
		return
	}
	form := r.MultipartForm
	defer form.RemoveAll()

	for field := range form.File {
		if field != imageField {
			writeError(w, http.StatusBadRequest, `Unexpected field name. Use "image" as the field name.`)
			return
		}
	}

	files := form.File[imageField]
	if len(files) > 1 {
		writeError(w, http.StatusBadRequest, "Too many files. Only 1 file allowed.")
		return
	}

	var header *multipart.FileHeader
	if len(files) == 1 {
		header = files[0]
		if !validation.ValidImageType(header.Header.Get("Content-Type")) {
			writeError(w, http.StatusBadRequest, "Invalid file format. Only JPEG, PNG, and GIF are allowed.")
			return
		}
		if !validation.ValidImageExtension(header.Filename) {
			writeError(w, http.StatusBadRequest, "Invalid file extension. Only .jpg, .jpeg, .png, and .gif are allowed.")
			return
		}
		if header.Size > h.MaxImageSize {
			writeError(w, http.StatusBadRequest, tooLarge)
			return
		}
	}

	var email string
	if v := form.Value["email"]; len(v) > 0 {
		email = strings.TrimSpace(v[0])
	}
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required to upload image.")
		return
	}
	if header == nil {
		writeError(w, http.StatusBadRequest, "No image file uploaded.")
		return
	}

	data, err := readUpload(header)
	if err != nil {
		writeInternal(w, r, "read upload", err)
		return
	}
	contentType, ok := utils.DetectImageType(data)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid file format. Only JPEG, PNG, and GIF are allowed.")
		return
	}

	ctx := r.Context()
	user, err := h.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		writeInternal(w, r, "lookup user", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	if user.HasImage() {
		writeError(w, http.StatusBadRequest, "Image already exists for this user.")
		return
	}

	filename := utils.ImageFileName(user.Email, header.Filename, h.now())
	ref, err := h.Images.Save(ctx, filename, contentType, data)
	if err != nil {
		writeInternal(w, r, "store image", err)
		return
	}

	if err := h.Repo.SetImagePath(ctx, user.Email, ref); err != nil {
		if delErr := h.Images.Delete(ctx, ref); delErr != nil {
			logger.FromContext(ctx).Warn("could not roll back stored image", "path", ref, "error", delErr)
		}
		writeInternal(w, r, "set image path", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":  "Image uploaded successfully.",
		"filePath": ref,
	})
}

// formatSize prints n in the largest whole unit: 5MB, 512KB or 1500 bytes.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
