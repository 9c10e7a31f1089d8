package controller

import (
	"encoding/json"
	"formbuilder/repository"
	"formbuilder/service"
	"formbuilder/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubmissionController struct {
	submissionService *service.SubmissionService
}

func NewSubmissionController(db *gorm.DB, changes *service.ChangeTracker) *SubmissionController {
	renderService := service.NewRenderService(db, changes)
	return &SubmissionController{
		submissionService: service.NewSubmissionService(db, renderService, changes),
	}
}

func setupSubmissionController(db *gorm.DB, changes *service.ChangeTracker) []RouteInfo {
	e := NewSubmissionController(db, changes)
	routes := []RouteInfo{
		{Method: "POST", Path: "/forms/:form_id/submissions", HandlerFunc: e.submitFormHandler()},
		{Method: "GET", Path: "/forms/:form_id/submissions", HandlerFunc: e.getSubmissionsHandler()},
		{Method: "GET", Path: "/submissions/:submission_id", HandlerFunc: e.getSubmissionHandler()},
	}
	return routes
}

// @id SubmitForm
// @Description Validates and stores the answers to a form. Answers to hidden questions are dropped.
// @Tags submission
// @Accept json
// @Produce json
// @Param form_id path string true "Form Id"
// @Param body body SubmissionCreate true "Answers to submit"
// @Success 201 {object} Submission
// @Router /forms/{form_id}/submissions [post]
func (e *SubmissionController) submitFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var submissionCreate SubmissionCreate
		if err := c.BindJSON(&submissionCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		submission, err := e.submissionService.Submit(c.Param("form_id"), submissionCreate.Answers, submissionCreate.OpenAnswers)
		if err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(201, toSubmissionResponse(submission))
	}
}

// @id GetSubmissions
// @Description Fetches all submissions of a form
// @Tags submission
// @Produce json
// @Param form_id path string true "Form Id"
// @Success 200 {array} Submission
// @Router /forms/{form_id}/submissions [get]
func (e *SubmissionController) getSubmissionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		submissions, err := e.submissionService.GetSubmissionsByFormId(c.Param("form_id"))
		if err != nil {
			respondError(c, err, "Form not found")
			return
		}
		c.JSON(200, utils.Map(submissions, toSubmissionResponse))
	}
}

// @id GetSubmission
// @Description Fetches a submission by id
// @Tags submission
// @Produce json
// @Param submission_id path string true "Submission Id"
// @Success 200 {object} Submission
// @Router /submissions/{submission_id} [get]
func (e *SubmissionController) getSubmissionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		submission, err := e.submissionService.GetSubmissionById(c.Param("submission_id"))
		if err != nil {
			respondError(c, err, "Submission not found")
			return
		}
		c.JSON(200, toSubmissionResponse(submission))
	}
}

type SubmissionCreate struct {
	Answers     map[string]json.RawMessage `json:"answers" swaggertype:"object"`
	OpenAnswers map[string]string          `json:"open_answers"`
}

type Submission struct {
	Id          string          `json:"id" binding:"required"`
	FormId      string          `json:"form_id" binding:"required"`
	Answers     json.RawMessage `json:"answers" binding:"required" swaggertype:"object"`
	OpenAnswers json.RawMessage `json:"open_answers" binding:"required" swaggertype:"object"`
	SubmittedAt time.Time       `json:"submitted_at" binding:"required"`
}

func toSubmissionResponse(submission *repository.Submission) *Submission {
	if submission == nil {
		return nil
	}
	return &Submission{
		Id:          submission.Id,
		FormId:      submission.FormId,
		Answers:     json.RawMessage(submission.Answers),
		OpenAnswers: json.RawMessage(submission.OpenAnswers),
		SubmittedAt: submission.SubmittedAt,
	}
}
