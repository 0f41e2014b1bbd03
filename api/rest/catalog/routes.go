package catalog

import (
	"codeberg.org/bookhub/server/bookhub/catalog"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// registers every catalog resource backed by its mongo collection
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, requireAuth gin.HandlerFunc) {
	Mount[catalog.Book, catalog.CreateBookRequest, catalog.UpdateBookRequest](
		router, catalog.Books, catalog.NewRepository[catalog.Book](db, catalog.Books.Collection), requireAuth)

	Mount[catalog.Author, catalog.CreateAuthorRequest, catalog.UpdateAuthorRequest](
		router, catalog.Authors, catalog.NewRepository[catalog.Author](db, catalog.Authors.Collection), requireAuth)

	Mount[catalog.Contact, catalog.CreateContactRequest, catalog.UpdateContactRequest](
		router, catalog.Contacts, catalog.NewRepository[catalog.Contact](db, catalog.Contacts.Collection), requireAuth)

	Mount[catalog.Publisher, catalog.CreatePublisherRequest, catalog.UpdatePublisherRequest](
		router, catalog.Publishers, catalog.NewRepository[catalog.Publisher](db, catalog.Publishers.Collection), requireAuth)

	Mount[catalog.Review, catalog.CreateReviewRequest, catalog.UpdateReviewRequest](
		router, catalog.Reviews, catalog.NewRepository[catalog.Review](db, catalog.Reviews.Collection), requireAuth)
}

// registers the five routes of one resource; writes go through requireAuth when the resource is protected
func Mount[T any, C CreateRequest[T], U UpdateRequest](router *gin.RouterGroup, resource catalog.Resource, store Store[T], requireAuth gin.HandlerFunc) {
	h := NewHandlers[T, C, U](resource, store)

	group := router.Group("/" + resource.Collection)
	{
		group.GET("", h.List())
		group.GET("/:id", h.Get())
	}

	writes := group
	if resource.Protected {
		writes = group.Group("", requireAuth)
	}
	{
		writes.POST("", h.Create())
		writes.PUT("/:id", h.Update())
		writes.DELETE("/:id", h.Delete())
	}
}
