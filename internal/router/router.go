package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ListOwnerBookings(c *ginext.Context)

	CreateItem(c *ginext.Context)
	UpdateItem(c *ginext.Context)
	GetItem(c *ginext.Context)
	ListItems(c *ginext.Context)
	SearchItems(c *ginext.Context)
	AddComment(c *ginext.Context)

	CreateRequest(c *ginext.Context)
	ListOwnRequests(c *ginext.Context)
	ListAllRequests(c *ginext.Context)
	GetRequest(c *ginext.Context)

	CreateUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/owner", h.ListOwnerBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.UpdateBookingStatus)

		// Items
		api.POST("/items", h.CreateItem)
		api.GET("/items", h.ListItems)
		api.GET("/items/search", h.SearchItems)
		api.GET("/items/:id", h.GetItem)
		api.PATCH("/items/:id", h.UpdateItem)
		api.POST("/items/:id/comment", h.AddComment)

		// Requests
		api.POST("/requests", h.CreateRequest)
		api.GET("/requests", h.ListOwnRequests)
		api.GET("/requests/all", h.ListAllRequests)
		api.GET("/requests/:id", h.GetRequest)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PATCH("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
