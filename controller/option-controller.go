package controller

import (
	"formbuilder/repository"
	"formbuilder/service"
	"formbuilder/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OptionController struct {
	optionService      *service.OptionService
	conditionalService *service.ConditionalService
}

func NewOptionController(db *gorm.DB, changes *service.ChangeTracker) *OptionController {
	return &OptionController{
		optionService:      service.NewOptionService(db, changes),
		conditionalService: service.NewConditionalService(db, changes),
	}
}

func setupOptionController(db *gorm.DB, changes *service.ChangeTracker) []RouteInfo {
	e := NewOptionController(db, changes)
	baseUrl := "/options"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getOptionsHandler()},
		{Method: "GET", Path: "/:option_id", HandlerFunc: e.getOptionHandler()},
		{Method: "PUT", Path: "/:option_id", HandlerFunc: e.updateOptionHandler()},
		{Method: "DELETE", Path: "/:option_id", HandlerFunc: e.deleteOptionHandler()},
		{Method: "GET", Path: "/:option_id/conditionals", HandlerFunc: e.getOptionConditionalsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @id GetOptions
// @Description Fetches all options
// @Tags option
// @Produce json
// @Success 200 {array} Option
// @Router /options [get]
func (e *OptionController) getOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		options, err := e.optionService.GetAllOptions()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(options, toOptionResponse))
	}
}

// @id GetOption
// @Description Fetches an option by id
// @Tags option
// @Produce json
// @Param option_id path string true "Option Id"
// @Success 200 {object} Option
// @Router /options/{option_id} [get]
func (e *OptionController) getOptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		option, err := e.optionService.GetOptionById(c.Param("option_id"))
		if err != nil {
			respondError(c, err, "Option not found")
			return
		}
		c.JSON(200, toOptionResponse(option))
	}
}

// @id UpdateOption
// @Description Updates the given fields of an option
// @Tags option
// @Accept json
// @Produce json
// @Param option_id path string true "Option Id"
// @Param body body OptionUpdate true "Fields to update"
// @Success 200 {object} Option
// @Router /options/{option_id} [put]
func (e *OptionController) updateOptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var optionUpdate OptionUpdate
		if err := c.BindJSON(&optionUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		option, err := e.optionService.UpdateOption(c.Param("option_id"), optionUpdate.toUpdate())
		if err != nil {
			respondError(c, err, "Option not found")
			return
		}
		c.JSON(200, toOptionResponse(option))
	}
}

// @id DeleteOption
// @Description Deletes an option and the conditionals it triggers
// @Tags option
// @Param option_id path string true "Option Id"
// @Success 204
// @Router /options/{option_id} [delete]
func (e *OptionController) deleteOptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.optionService.DeleteOption(c.Param("option_id")); err != nil {
			respondError(c, err, "Option not found")
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetOptionConditionals
// @Description Fetches the conditionals an option triggers
// @Tags option
// @Produce json
// @Param option_id path string true "Option Id"
// @Success 200 {array} Conditional
// @Router /options/{option_id}/conditionals [get]
func (e *OptionController) getOptionConditionalsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conditionals, err := e.conditionalService.GetConditionalsByOptionId(c.Param("option_id"))
		if err != nil {
			respondError(c, err, "Option not found")
			return
		}
		c.JSON(200, utils.Map(conditionals, toConditionalResponse))
	}
}

type OptionCreate struct {
	Label          string `json:"label" binding:"required"`
	Order          int    `json:"order"`
	AllowsFreeText bool   `json:"allows_free_text"`
}

type OptionUpdate struct {
	Label          *string `json:"label"`
	Order          *int    `json:"order"`
	AllowsFreeText *bool   `json:"allows_free_text"`
}

type Option struct {
	Id             string `json:"id" binding:"required"`
	QuestionId     string `json:"question_id" binding:"required"`
	Label          string `json:"label" binding:"required"`
	Order          int    `json:"order" binding:"required"`
	AllowsFreeText bool   `json:"allows_free_text" binding:"required"`
}

func (e *OptionCreate) toModel(questionId string) *repository.Option {
	return &repository.Option{
		QuestionId:     questionId,
		Label:          e.Label,
		Order:          e.Order,
		AllowsFreeText: e.AllowsFreeText,
	}
}

func (e *OptionUpdate) toUpdate() *service.OptionUpdate {
	return &service.OptionUpdate{
		Label:          e.Label,
		Order:          e.Order,
		AllowsFreeText: e.AllowsFreeText,
	}
}

func toOptionResponse(option *repository.Option) *Option {
	if option == nil {
		return nil
	}
	return &Option{
		Id:             option.Id,
		QuestionId:     option.QuestionId,
		Label:          option.Label,
		Order:          option.Order,
		AllowsFreeText: option.AllowsFreeText,
	}
}
