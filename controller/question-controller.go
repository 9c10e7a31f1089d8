package controller

import (
	"formbuilder/repository"
	"formbuilder/service"
	"formbuilder/utils"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionController struct {
	questionService    *service.QuestionService
	optionService      *service.OptionService
	conditionalService *service.ConditionalService
}

func NewQuestionController(db *gorm.DB, changes *service.ChangeTracker) *QuestionController {
	return &QuestionController{
		questionService:    service.NewQuestionService(db, changes),
		optionService:      service.NewOptionService(db, changes),
		conditionalService: service.NewConditionalService(db, changes),
	}
}

func setupQuestionController(db *gorm.DB, changes *service.ChangeTracker) []RouteInfo {
	e := NewQuestionController(db, changes)
	routes := []RouteInfo{
		{Method: "GET", Path: "/questions", HandlerFunc: e.getQuestionsHandler()},
		{Method: "GET", Path: "/questions/:question_id", HandlerFunc: e.getQuestionHandler()},
		{Method: "PUT", Path: "/questions/:question_id", HandlerFunc: e.updateQuestionHandler()},
		{Method: "DELETE", Path: "/questions/:question_id", HandlerFunc: e.deleteQuestionHandler()},
		{Method: "GET", Path: "/questions/:question_id/options", HandlerFunc: e.getQuestionOptionsHandler()},
		{Method: "POST", Path: "/questions/:question_id/options", HandlerFunc: e.createQuestionOptionHandler()},
		{Method: "GET", Path: "/questions/:question_id/conditionals", HandlerFunc: e.getQuestionConditionalsHandler()},
		{Method: "GET", Path: "/question-types", HandlerFunc: cache.CachePage(changes.Snapshots(), time.Hour, e.getQuestionTypesHandler())},
	}
	return routes
}

// @id GetQuestions
// @Description Fetches all questions
// @Tags question
// @Produce json
// @Success 200 {array} Question
// @Router /questions [get]
func (e *QuestionController) getQuestionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		questions, err := e.questionService.GetAllQuestions()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(questions, toQuestionResponse))
	}
}

// @id GetQuestion
// @Description Fetches a question by id
// @Tags question
// @Produce json
// @Param question_id path string true "Question Id"
// @Success 200 {object} Question
// @Router /questions/{question_id} [get]
func (e *QuestionController) getQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		question, err := e.questionService.GetQuestionById(c.Param("question_id"))
		if err != nil {
			respondError(c, err, "Question not found")
			return
		}
		c.JSON(200, toQuestionResponse(question))
	}
}

// @id UpdateQuestion
// @Description Updates the given fields of a question. An empty guidance_text clears it.
// @Tags question
// @Accept json
// @Produce json
// @Param question_id path string true "Question Id"
// @Param body body QuestionUpdate true "Fields to update"
// @Success 200 {object} Question
// @Router /questions/{question_id} [put]
func (e *QuestionController) updateQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var questionUpdate QuestionUpdate
		if err := c.BindJSON(&questionUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		question, err := e.questionService.UpdateQuestion(c.Param("question_id"), questionUpdate.toUpdate())
		if err != nil {
			respondError(c, err, "Question not found")
			return
		}
		c.JSON(200, toQuestionResponse(question))
	}
}

// @id DeleteQuestion
// @Description Deletes a question with its options and every conditional pointing at them
// @Tags question
// @Param question_id path string true "Question Id"
// @Success 204
// @Router /questions/{question_id} [delete]
func (e *QuestionController) deleteQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.questionService.DeleteQuestion(c.Param("question_id")); err != nil {
			respondError(c, err, "Question not found")
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetQuestionOptions
// @Description Fetches the options of a question in order
// @Tags question
// @Produce json
// @Param question_id path string true "Question Id"
// @Success 200 {array} Option
// @Router /questions/{question_id}/options [get]
func (e *QuestionController) getQuestionOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		options, err := e.optionService.GetOptionsByQuestionId(c.Param("question_id"))
		if err != nil {
			respondError(c, err, "Question not found")
			return
		}
		c.JSON(200, utils.Map(options, toOptionResponse))
	}
}

// @id CreateQuestionOption
// @Description Creates an option for a question
// @Tags question
// @Accept json
// @Produce json
// @Param question_id path string true "Question Id"
// @Param body body OptionCreate true "Option to create"
// @Success 201 {object} Option
// @Router /questions/{question_id}/options [post]
func (e *QuestionController) createQuestionOptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var optionCreate OptionCreate
		if err := c.BindJSON(&optionCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		option, err := e.optionService.CreateOption(optionCreate.toModel(c.Param("question_id")))
		if err != nil {
			respondError(c, err, "Question not found")
			return
		}
		c.JSON(201, toOptionResponse(option))
	}
}

// @id GetQuestionConditionals
// @Description Fetches the conditionals revealing a question
// @Tags question
// @Produce json
// @Param question_id path string true "Question Id"
// @Success 200 {array} Conditional
// @Router /questions/{question_id}/conditionals [get]
func (e *QuestionController) getQuestionConditionalsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conditionals, err := e.conditionalService.GetConditionalsByQuestionId(c.Param("question_id"))
		if err != nil {
			respondError(c, err, "Question not found")
			return
		}
		c.JSON(200, utils.Map(conditionals, toConditionalResponse))
	}
}

// @id GetQuestionTypes
// @Description Lists the question types and the legacy labels they accept
// @Tags question
// @Produce json
// @Success 200 {object} QuestionTypes
// @Router /question-types [get]
func (e *QuestionController) getQuestionTypesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, QuestionTypes{
			Types:         repository.QuestionTypes,
			LegacyAliases: repository.LegacyQuestionTypes,
		})
	}
}

type QuestionCreate struct {
	Title         string  `json:"title" binding:"required"`
	Code          string  `json:"code"`
	GuidanceText  *string `json:"guidance_text"`
	Order         int     `json:"order"`
	Required      bool    `json:"required"`
	IsSubQuestion bool    `json:"is_sub_question"`
	Type          string  `json:"type" binding:"required"`
}

type QuestionUpdate struct {
	Title         *string `json:"title"`
	Code          *string `json:"code"`
	GuidanceText  *string `json:"guidance_text"`
	Order         *int    `json:"order"`
	Required      *bool   `json:"required"`
	IsSubQuestion *bool   `json:"is_sub_question"`
	Type          *string `json:"type"`
}

type Question struct {
	Id            string                  `json:"id" binding:"required"`
	FormId        string                  `json:"form_id" binding:"required"`
	Title         string                  `json:"title" binding:"required"`
	Code          string                  `json:"code" binding:"required"`
	GuidanceText  *string                 `json:"guidance_text"`
	Order         int                     `json:"order" binding:"required"`
	Required      bool                    `json:"required" binding:"required"`
	IsSubQuestion bool                    `json:"is_sub_question" binding:"required"`
	Type          repository.QuestionType `json:"type" binding:"required"`
}

type QuestionTypes struct {
	Types         []repository.QuestionType          `json:"types" binding:"required"`
	LegacyAliases map[string]repository.QuestionType `json:"legacy_aliases" binding:"required"`
}

func (e *QuestionCreate) toModel(formId string) *repository.Question {
	return &repository.Question{
		FormId:        formId,
		Title:         e.Title,
		Code:          e.Code,
		GuidanceText:  e.GuidanceText,
		Order:         e.Order,
		Required:      e.Required,
		IsSubQuestion: e.IsSubQuestion,
		Type:          repository.QuestionType(e.Type),
	}
}

func (e *QuestionUpdate) toUpdate() *service.QuestionUpdate {
	return &service.QuestionUpdate{
		Title:         e.Title,
		Code:          e.Code,
		GuidanceText:  e.GuidanceText,
		Order:         e.Order,
		Required:      e.Required,
		IsSubQuestion: e.IsSubQuestion,
		Type:          e.Type,
	}
}

func toQuestionResponse(question *repository.Question) *Question {
	if question == nil {
		return nil
	}
	return &Question{
		Id:            question.Id,
		FormId:        question.FormId,
		Title:         question.Title,
		Code:          question.Code,
		GuidanceText:  question.GuidanceText,
		Order:         question.Order,
		Required:      question.Required,
		IsSubQuestion: question.IsSubQuestion,
		Type:          question.Type,
	}
}
