package repository

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Submission struct {
	Id          string         `gorm:"primaryKey;size:64"`
	FormId      string         `gorm:"not null;index;size:64"`
	Answers     datatypes.JSON `gorm:"type:json;not null"`
	OpenAnswers datatypes.JSON `gorm:"type:json;not null"`
	SubmittedAt time.Time      `gorm:"not null"`
}

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) SaveSubmission(submission *Submission) (*Submission, error) {
	defer timeQuery("SaveSubmission")()
	result := r.DB.Create(submission)
	if result.Error != nil {
		return nil, result.Error
	}
	return submission, nil
}

func (r *SubmissionRepository) GetSubmissionById(submissionId string) (*Submission, error) {
	defer timeQuery("GetSubmissionById")()
	var submission Submission
	result := r.DB.First(&submission, "id = ?", submissionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &submission, nil
}

func (r *SubmissionRepository) GetSubmissionsByFormId(formId string) ([]*Submission, error) {
	defer timeQuery("GetSubmissionsByFormId")()
	submissions := make([]*Submission, 0)
	result := r.DB.Where("form_id = ?", formId).Order("submitted_at ASC, id ASC").Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}
	return submissions, nil
}
