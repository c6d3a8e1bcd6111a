package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/middleware"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/response"
	"github.com/Vijaykarthik1/tnstc-leave/internal/service/file"
	"github.com/go-chi/chi/v5"
)

// maxPhotoBytes bounds the multipart upload of a profile photo.
const maxPhotoBytes = 5 << 20

type UploadPhotoResponse struct {
	ImageURL string `json:"imageUrl"`
}

type UserHandler interface {
	UploadProfilePhoto(w http.ResponseWriter, r *http.Request)
	UpdateProfilePhoto(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
	fileService file.FileService
}

// UploadProfilePhoto implements UserHandler.
func (u *UserHandlerImpl) UploadProfilePhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes+1024)
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(w, "Image must not exceed 5MB", nil)
			return
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	image, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Field 'image' is required", nil)
		return
	}
	defer image.Close()

	if header.Size > maxPhotoBytes {
		response.BadRequest(w, "Image must not exceed 5MB", nil)
		return
	}

	url, err := u.fileService.UploadProfilePhoto(r.Context(), actor.ID, image, header.Filename)
	if err != nil {
		slog.Error("UploadProfilePhoto service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, UploadPhotoResponse{ImageURL: url})
}

// UpdateProfilePhoto implements UserHandler.
func (u *UserHandlerImpl) UpdateProfilePhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.UpdateProfilePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfilePhoto decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	resp, err := u.userService.UpdateProfilePhoto(r.Context(), actor.ID, actor.Role, req)
	if err != nil {
		slog.Error("UpdateProfilePhoto service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

func NewUserHandler(userService user.UserService, fileService file.FileService) UserHandler {
	return &UserHandlerImpl{userService: userService, fileService: fileService}
}
