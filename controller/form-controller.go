package controller

import (
	"formbuilder/repository"
	"formbuilder/service"
	"formbuilder/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FormController struct {
	formService     *service.FormService
	questionService *service.QuestionService
}

func NewFormController(db *gorm.DB, changes *service.ChangeTracker) *FormController {
	return &FormController{
		formService:     service.NewFormService(db, changes),
		questionService: service.NewQuestionService(db, changes),
	}
}

func setupFormController(db *gorm.DB, changes *service.ChangeTracker) []RouteInfo {
	e := NewFormController(db, changes)
	baseUrl := "/forms"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getFormsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createFormHandler()},
		{Method: "GET", Path: "/:form_id", HandlerFunc: e.getFormHandler()},
		{Method: "PUT", Path: "/:form_id", HandlerFunc: e.updateFormHandler()},
		{Method: "DELETE", Path: "/:form_id", HandlerFunc: e.deleteFormHandler()},
		{Method: "GET", Path: "/:form_id/questions", HandlerFunc: e.getFormQuestionsHandler()},
		{Method: "POST", Path: "/:form_id/questions", HandlerFunc: e.createFormQuestionHandler()},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @id GetForms
// @Description Fetches all forms
// @Tags form
// @Produce json
// @Success 200 {array} Form
// @Router /forms [get]
func (e *FormController) getFormsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		forms, err := e.formService.GetAllForms()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(forms, toFormResponse))
	}
}

// @id CreateForm
// @Description Creates a form
// @Tags form
// @Accept json
// @Produce json
// @Param body body FormCreate true "Form to create"
// @Success 201 {object} Form
// @Router /forms [post]
func (e *FormController) createFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var formCreate FormCreate
		if err := c.BindJSON(&formCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		form, err := e.formService.CreateForm(formCreate.toModel())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toFormResponse(form))
	}
}

// @id GetForm
// @Description Fetches a form by id
// @Tags form
// @Produce json
// @Param form_id path string true "Form Id"
// @Success 200 {object} Form
// @Router /forms/{form_id} [get]
func (e *FormController) getFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := e.formService.GetFormById(c.Param("form_id"))
		if err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(200, toFormResponse(form))
	}
}

// @id UpdateForm
// @Description Updates the given fields of a form
// @Tags form
// @Accept json
// @Produce json
// @Param form_id path string true "Form Id"
// @Param body body FormUpdate true "Fields to update"
// @Success 200 {object} Form
// @Router /forms/{form_id} [put]
func (e *FormController) updateFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var formUpdate FormUpdate
		if err := c.BindJSON(&formUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		form, err := e.formService.UpdateForm(c.Param("form_id"), formUpdate.toUpdate())
		if err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(200, toFormResponse(form))
	}
}

// @id DeleteForm
// @Description Deletes a form with its questions, options and conditionals
// @Tags form
// @Param form_id path string true "Form Id"
// @Success 204
// @Router /forms/{form_id} [delete]
func (e *FormController) deleteFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.formService.DeleteForm(c.Param("form_id")); err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetFormQuestions
// @Description Fetches the questions of a form in order
// @Tags form
// @Produce json
// @Param form_id path string true "Form Id"
// @Success 200 {array} Question
// @Router /forms/{form_id}/questions [get]
func (e *FormController) getFormQuestionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		questions, err := e.questionService.GetQuestionsByFormId(c.Param("form_id"))
		if err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(200, utils.Map(questions, toQuestionResponse))
	}
}

// @id CreateFormQuestion
// @Description Creates a question in a form
// @Tags form
// @Accept json
// @Produce json
// @Param form_id path string true "Form Id"
// @Param body body QuestionCreate true "Question to create"
// @Success 201 {object} Question
// @Router /forms/{form_id}/questions [post]
func (e *FormController) createFormQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var questionCreate QuestionCreate
		if err := c.BindJSON(&questionCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		question, err := e.questionService.CreateQuestion(questionCreate.toModel(c.Param("form_id")))
		if err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(201, toQuestionResponse(question))
	}
}

type FormCreate struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type FormUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

type Form struct {
	Id          string `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Order       int    `json:"order" binding:"required"`
}

func (e *FormCreate) toModel() *repository.Form {
	return &repository.Form{
		Title:       e.Title,
		Description: e.Description,
		Order:       e.Order,
	}
}

func (e *FormUpdate) toUpdate() *service.FormUpdate {
	return &service.FormUpdate{
		Title:       e.Title,
		Description: e.Description,
		Order:       e.Order,
	}
}

func toFormResponse(form *repository.Form) *Form {
	if form == nil {
		return nil
	}
	return &Form{
		Id:          form.Id,
		Title:       form.Title,
		Description: form.Description,
		Order:       form.Order,
	}
}
