package catalog

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"codeberg.org/bookhub/server/bookhub/catalog"
	"codeberg.org/bookhub/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// serves the five CRUD operations for one catalog resource
type Handlers[T any, C CreateRequest[T], U UpdateRequest] struct {
	resource catalog.Resource
	store    Store[T]
	now      func() time.Time
}

func NewHandlers[T any, C CreateRequest[T], U UpdateRequest](resource catalog.Resource, store Store[T]) *Handlers[T, C, U] {
	return &Handlers[T, C, U]{
		resource: resource,
		store:    store,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handlers[T, C, U]) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.store.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, h.message("Failed to retrieve %ss."), err)
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

func (h *Handlers[T, C, U]) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := h.store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			h.fail(c, err, "Failed to retrieve %s.")
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

func (h *Handlers[T, C, U]) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req C
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		now := h.now()
		if err := req.Validate(now); err != nil {
			errors.ValidationError(c, err)
			return
		}

		id, err := h.store.Create(c.Request.Context(), req.Document(now))
		if err != nil {
			errors.InternalError(c, h.message("Failed to create %s."), err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":                  h.message("%s created successfully."),
			h.resource.Singular + "Id": id,
		})
	}
}

func (h *Handlers[T, C, U]) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !catalog.IsValidID(id) {
			errors.BadRequest(c, h.message("Invalid %s ID format."))
			return
		}

		var req U
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := req.Validate(h.now()); err != nil {
			errors.ValidationError(c, err)
			return
		}

		fields := req.Fields()
		if len(fields) == 0 {
			errors.BadRequest(c, "No fields provided for update.")
			return
		}

		if err := h.store.Update(c.Request.Context(), id, fields); err != nil {
			h.fail(c, err, "Failed to update %s.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: h.message("%s updated successfully.")})
	}
}

func (h *Handlers[T, C, U]) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
			h.fail(c, err, "Failed to delete %s.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: h.message("%s deleted successfully.")})
	}
}

// maps repository errors onto 400/404/500
func (h *Handlers[T, C, U]) fail(c *gin.Context, err error, internal string) {
	switch {
	case stderrors.Is(err, catalog.ErrInvalidID):
		errors.BadRequest(c, h.message("Invalid %s ID format."))
	case stderrors.Is(err, catalog.ErrNotFound):
		errors.NotFound(c, h.message("%s not found."))
	default:
		errors.InternalError(c, h.message(internal), err)
	}
}

// fills the single %s with the resource label, lower-cased unless it opens the sentence
func (h *Handlers[T, C, U]) message(format string) string {
	if strings.HasPrefix(format, "%s") {
		return strings.Replace(format, "%s", h.resource.Label, 1)
	}

	return strings.Replace(format, "%s", h.resource.Singular, 1)
}
