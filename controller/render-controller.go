package controller

import (
	"encoding/json"
	"formbuilder/service"
	"formbuilder/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RenderController struct {
	service *service.RenderService
}

func NewRenderController(db *gorm.DB, changes *service.ChangeTracker) *RenderController {
	return &RenderController{service: service.NewRenderService(db, changes)}
}

func setupRenderController(db *gorm.DB, changes *service.ChangeTracker) []RouteInfo {
	e := NewRenderController(db, changes)
	routes := []RouteInfo{
		{Method: "POST", Path: "/forms/:form_id/render", HandlerFunc: e.renderFormHandler()},
		{Method: "POST", Path: "/questions/:question_id/visibility", HandlerFunc: e.questionVisibilityHandler()},
	}
	return routes
}

// @id RenderForm
// @Description Returns the questions of a form that are visible for the given answers
// @Tags render
// @Accept json
// @Produce json
// @Param form_id path string true "Form Id"
// @Param body body AnswersBody true "Current answers by question id"
// @Success 200 {array} RenderedQuestion
// @Router /forms/{form_id}/render [post]
func (e *RenderController) renderFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body AnswersBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rendered, err := e.service.Render(c.Param("form_id"), body.Answers)
		if err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(200, utils.Map(rendered, toRenderedQuestionResponse))
	}
}

// @id QuestionVisibility
// @Description Tells whether a question is visible for the given answers
// @Tags render
// @Accept json
// @Produce json
// @Param question_id path string true "Question Id"
// @Param body body AnswersBody true "Current answers by question id"
// @Success 200 {object} Visibility
// @Router /questions/{question_id}/visibility [post]
func (e *RenderController) questionVisibilityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body AnswersBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		visible, err := e.service.IsQuestionVisible(c.Param("question_id"), body.Answers)
		if err != nil {
			respondError(c, err, "Question not found")
			return
		}
		c.JSON(200, Visibility{Visible: visible})
	}
}

type AnswersBody struct {
	Answers map[string]json.RawMessage `json:"answers" swaggertype:"object"`
}

type Visibility struct {
	Visible bool `json:"visible" binding:"required"`
}

type RenderedQuestion struct {
	Question
	Options       []*Option `json:"options" binding:"required"`
	OpenOptionIds []string  `json:"open_option_ids" binding:"required"`
}

func toRenderedQuestionResponse(rendered *service.RenderedQuestion) *RenderedQuestion {
	return &RenderedQuestion{
		Question:      *toQuestionResponse(rendered.Question),
		Options:       utils.Map(rendered.Options, toOptionResponse),
		OpenOptionIds: rendered.OpenOptionIds,
	}
}
