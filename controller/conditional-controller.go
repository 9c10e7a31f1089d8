package controller

import (
	"formbuilder/repository"
	"formbuilder/service"
	"formbuilder/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConditionalController struct {
	service *service.ConditionalService
}

func NewConditionalController(db *gorm.DB, changes *service.ChangeTracker) *ConditionalController {
	return &ConditionalController{service: service.NewConditionalService(db, changes)}
}

func setupConditionalController(db *gorm.DB, changes *service.ChangeTracker) []RouteInfo {
	e := NewConditionalController(db, changes)
	baseUrl := "/conditionals"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getConditionalsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createConditionalHandler()},
		{Method: "GET", Path: "/:conditional_id", HandlerFunc: e.getConditionalHandler()},
		{Method: "DELETE", Path: "/:conditional_id", HandlerFunc: e.deleteConditionalHandler()},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @id GetConditionals
// @Description Fetches all conditionals
// @Tags conditional
// @Produce json
// @Success 200 {array} Conditional
// @Router /conditionals [get]
func (e *ConditionalController) getConditionalsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conditionals, err := e.service.GetAllConditionals()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(conditionals, toConditionalResponse))
	}
}

// @id CreateConditional
// @Description Links an option to the sub question it reveals
// @Tags conditional
// @Accept json
// @Produce json
// @Param body body ConditionalCreate true "Conditional to create"
// @Success 201 {object} Conditional
// @Router /conditionals [post]
func (e *ConditionalController) createConditionalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var conditionalCreate ConditionalCreate
		if err := c.BindJSON(&conditionalCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		conditional, err := e.service.CreateConditional(conditionalCreate.toModel())
		if err != nil {
			respondError(c, err, "Option or question not found")
			return
		}
		c.JSON(201, toConditionalResponse(conditional))
	}
}

// @id GetConditional
// @Description Fetches a conditional by id
// @Tags conditional
// @Produce json
// @Param conditional_id path string true "Conditional Id"
// @Success 200 {object} Conditional
// @Router /conditionals/{conditional_id} [get]
func (e *ConditionalController) getConditionalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conditional, err := e.service.GetConditionalById(c.Param("conditional_id"))
		if err != nil {
			respondError(c, err, "Conditional not found")
			return
		}
		c.JSON(200, toConditionalResponse(conditional))
	}
}

// @id DeleteConditional
// @Description Deletes a conditional
// @Tags conditional
// @Param conditional_id path string true "Conditional Id"
// @Success 204
// @Router /conditionals/{conditional_id} [delete]
func (e *ConditionalController) deleteConditionalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.service.DeleteConditional(c.Param("conditional_id")); err != nil {
			respondError(c, err, "Conditional not found")
			return
		}
		c.JSON(204, nil)
	}
}

type ConditionalCreate struct {
	RevealingOptionId  string `json:"revealing_option_id" binding:"required"`
	RevealedQuestionId string `json:"revealed_question_id" binding:"required"`
}

type Conditional struct {
	Id                 string `json:"id" binding:"required"`
	RevealingOptionId  string `json:"revealing_option_id" binding:"required"`
	RevealedQuestionId string `json:"revealed_question_id" binding:"required"`
}

func (e *ConditionalCreate) toModel() *repository.Conditional {
	return &repository.Conditional{
		RevealingOptionId:  e.RevealingOptionId,
		RevealedQuestionId: e.RevealedQuestionId,
	}
}

func toConditionalResponse(conditional *repository.Conditional) *Conditional {
	if conditional == nil {
		return nil
	}
	return &Conditional{
		Id:                 conditional.Id,
		RevealingOptionId:  conditional.RevealingOptionId,
		RevealedQuestionId: conditional.RevealedQuestionId,
	}
}
