package users

import (
	stderrors "errors"
	"net/http"
	"strings"

	"codeberg.org/bookhub/server/bookhub/users"
	"codeberg.org/bookhub/server/internal/auth"
	"codeberg.org/bookhub/server/internal/errors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgInvalidID   = "Invalid user ID format."
	msgNotFound    = "User not found."
	msgEmailExists = "Email already exists."
)

// ListUsersHandler godoc
// @Summary List users
// @Description All accounts without password hashes (admin only)
// @Tags users
// @Produce json
// @Success 200 {array} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users [get]
// @Security BearerAuth
func ListUsersHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "Failed to retrieve users.", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetUserHandler godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/users/{id} [get]
// @Security BearerAuth
func GetUserHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "Failed to retrieve user.")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// CreateUserHandler godoc
// @Summary Create a user
// @Description Creates a password account; role defaults to user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users [post]
// @Security BearerAuth
func CreateUserHandler(store UserStore, hasher PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		email := strings.TrimSpace(req.Email)

		_, err := store.FindByEmail(c.Request.Context(), email)
		switch {
		case err == nil:
			errors.BadRequest(c, msgEmailExists)
			return
		case !stderrors.Is(err, users.ErrNotFound):
			errors.InternalError(c, "Failed to create user.", err)
			return
		}

		hashed, err := hasher.Hash(req.Password)
		if err != nil {
			errors.InternalError(c, "Failed to create user.", err)
			return
		}

		role := req.Role
		if role == "" {
			role = auth.RoleUser
		}

		id, err := store.Create(c.Request.Context(), &users.User{
			Name:     strings.TrimSpace(req.Name),
			Email:    email,
			Password: hashed,
			Role:     role,
		})

		if err != nil {
			respondStoreError(c, err, "Failed to create user.")
			return
		}

		c.JSON(http.StatusCreated, CreateUserResponse{
			Message: "User created successfully.",
			UserID:  id,
		})
	}
}

// UpdateUserHandler godoc
// @Summary Update a user
// @Description Partial update; a new password is re-hashed
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users/{id} [put]
// @Security BearerAuth
func UpdateUserHandler(store UserStore, hasher PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !primitive.IsValidObjectID(id) {
			errors.BadRequest(c, msgInvalidID)
			return
		}

		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		fields := users.UpdateFields{
			Name:  trimmed(req.Name),
			Email: trimmed(req.Email),
			Role:  req.Role,
		}

		if req.Password != nil {
			hashed, err := hasher.Hash(*req.Password)
			if err != nil {
				errors.InternalError(c, "Failed to update user.", err)
				return
			}

			fields.Password = &hashed
		}

		if fields.IsEmpty() {
			errors.BadRequest(c, "No valid fields provided.")
			return
		}

		if err := store.Update(c.Request.Context(), id, fields); err != nil {
			respondStoreError(c, err, "Failed to update user.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "User updated successfully."})
	}
}

// DeleteUserHandler godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users/{id} [delete]
// @Security BearerAuth
func DeleteUserHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondStoreError(c, err, "Failed to delete user.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully."})
	}
}

func respondStoreError(c *gin.Context, err error, internal string) {
	switch {
	case stderrors.Is(err, users.ErrInvalidID):
		errors.BadRequest(c, msgInvalidID)
	case stderrors.Is(err, users.ErrNotFound):
		errors.NotFound(c, msgNotFound)
	case stderrors.Is(err, users.ErrEmailTaken):
		errors.BadRequest(c, msgEmailExists)
	default:
		errors.InternalError(c, internal, err)
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	return &v
}
