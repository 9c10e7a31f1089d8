package service

import (
	"formbuilder/repository"

	"gorm.io/gorm"
)

type FormUpdate struct {
	Title       *string
	Description *string
	Order       *int
}

type FormService struct {
	form_repository *repository.FormRepository
	changes         *ChangeTracker
}

func NewFormService(db *gorm.DB, changes *ChangeTracker) *FormService {
	return &FormService{
		form_repository: repository.NewFormRepository(db),
		changes:         changes,
	}
}

func (e *FormService) GetAllForms() ([]*repository.Form, error) {
	return e.form_repository.GetAllForms()
}

func (e *FormService) GetFormById(formId string) (*repository.Form, error) {
	return e.form_repository.GetFormById(formId)
}

func (e *FormService) CreateForm(form *repository.Form) (*repository.Form, error) {
	form.Id = repository.NewId("form")
	form, err := e.form_repository.SaveForm(form)
	if err != nil {
		return nil, err
	}
	e.changes.Track(EntityForm, ActionCreated, form.Id)
	return form, nil
}

func (e *FormService) UpdateForm(formId string, update *FormUpdate) (*repository.Form, error) {
	form, err := e.form_repository.GetFormById(formId)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		form.Title = *update.Title
	}
	if update.Description != nil {
		form.Description = *update.Description
	}
	if update.Order != nil {
		form.Order = *update.Order
	}
	form, err = e.form_repository.SaveForm(form)
	if err != nil {
		return nil, err
	}
	e.changes.Track(EntityForm, ActionUpdated, form.Id)
	return form, nil
}

func (e *FormService) DeleteForm(formId string) error {
	if err := e.form_repository.DeleteForm(formId); err != nil {
		return err
	}
	e.changes.Track(EntityForm, ActionDeleted, formId)
	return nil
}
