package template

import "errors"

var (
	ErrEmptyIDParam          = errors.New("template id can't be empty")
	ErrTemplateNotFound      = errors.New("flow template not found")
	ErrTemplateAlreadyExists = errors.New("flow template already exists")
	ErrTemplateInUse         = errors.New("flow template is referenced by pending instances")
)
