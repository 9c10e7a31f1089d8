package controller

import (
	"errors"
	"formbuilder/app_error"
	"formbuilder/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method      string
	Path        string
	HandlerFunc gin.HandlerFunc
}

func SetRoutes(r *gin.Engine, db *gorm.DB, changes *service.ChangeTracker) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupFormController(db, changes)...)
	routes = append(routes, setupQuestionController(db, changes)...)
	routes = append(routes, setupOptionController(db, changes)...)
	routes = append(routes, setupConditionalController(db, changes)...)
	routes = append(routes, setupRenderController(db, changes)...)
	routes = append(routes, setupSubmissionController(db, changes)...)
	group := r.Group("/api")
	for _, route := range routes {
		group.Handle(route.Method, route.Path, route.HandlerFunc)
	}
}

func respondError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(404, gin.H{"error": notFound})
		return
	}
	app_error.Respond(c, err)
}
