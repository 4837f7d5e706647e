package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/RichiMaiden/menacor-vital/internal/common"
	"github.com/RichiMaiden/menacor-vital/internal/server/models"
	"github.com/RichiMaiden/menacor-vital/internal/server/services"
)

type healthResponse struct {
	OK bool   `json:"ok"`
	TS string `json:"ts"`
}

type createUserRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FullName  *string `json:"full_name"`
	Birthdate string  `json:"birthdate"`
	Email     *string `json:"email"`
}

type createUserResponse struct {
	Status string `json:"status"`
	UserID int64  `json:"user_id"`
}

type createVitalRequest struct {
	UserID       int64    `json:"user_id"`
	UserExternal string   `json:"user_external"`
	Date         string   `json:"date"`
	Systolic     *int64   `json:"pressure_systolic"`
	Diastolic    *int64   `json:"pressure_diastolic"`
	Glucose      *float64 `json:"glucose"`
	Notes        *string  `json:"notes"`
}

type createVitalResponse struct {
	Status  string `json:"status"`
	VitalID int64  `json:"vital_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (api *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		OK: true,
		TS: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (api *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cuerpo JSON inválido"})
		return
	}
	if req.Username == "" || req.Password == "" || req.Birthdate == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "faltan campos"})
		return
	}

	id, err := api.users.CreateIdempotent(r.Context(), &models.User{
		Username:  req.Username,
		Password:  req.Password,
		FullName:  req.FullName,
		Birthdate: req.Birthdate,
		Email:     req.Email,
	})
	if err != nil {
		api.internalError(w, r, err)
		return
	}

	// 201 either way: a replayed username resolves to the existing row.
	writeJSON(w, http.StatusCreated, createUserResponse{Status: "ok", UserID: id})
}

func (api *API) CreateVital(w http.ResponseWriter, r *http.Request) {
	var req createVitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cuerpo JSON inválido"})
		return
	}
	if req.UserID == 0 && req.UserExternal == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user_id o user_external requeridos"})
		return
	}

	id, err := api.vitals.Create(r.Context(), services.CreateVitalInput{
		UserID:       req.UserID,
		UserExternal: req.UserExternal,
		Date:         req.Date,
		Systolic:     req.Systolic,
		Diastolic:    req.Diastolic,
		Glucose:      req.Glucose,
		Notes:        req.Notes,
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "usuario no encontrado en servidor"})
			return
		}
		api.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createVitalResponse{Status: "ok", VitalID: id})
}

func (api *API) internalError(w http.ResponseWriter, r *http.Request, err error) {
	api.logger.Error(r.Context(), "handler error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error interno"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
