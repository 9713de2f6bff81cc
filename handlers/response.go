package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"jobportal/logger"
	"jobportal/models"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ApiResponse is the login envelope the front-ends read "success" from.
type ApiResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	User    *models.UserSummary `json:"user,omitempty"`
	Token   string              `json:"token,omitempty"`
}

const (
	msgValidationFailed = "Validation failed."
	msgUserNotFound     = "User not found."
	msgInternal         = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Details: details})
}

func writeInternal(w http.ResponseWriter, r *http.Request, what string, err error) {
	logger.FromContext(r.Context()).Error(what, "error", err)
	writeError(w, http.StatusInternalServerError, msgInternal, err.Error())
}

// decodeRequest reads a JSON body, or a urlencoded form when the client
// posts one.
func decodeRequest(r *http.Request, v interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		return json.NewDecoder(r.Body).Decode(v)
	}
	// ParseForm skips DELETE bodies, so the form is parsed by hand.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return err
	}
	return decodeForm(form, v)
}

// decodeForm fills the string and number fields of the struct v points to,
// matching form keys against the fields' json names.
func decodeForm(form url.Values, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode form: %T is not a struct pointer", v)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		name := strings.SplitN(rt.Field(i).Tag.Get("json"), ",", 2)[0]
		fv := rv.Field(i)
		if name == "" || name == "-" || !fv.CanSet() || !form.Has(name) {
			continue
		}
		raw := form.Get(name)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			fv.SetFloat(f)
		}
	}
	return nil
}
