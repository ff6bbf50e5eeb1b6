package certgen

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for certgen.
var (
	// ErrResourceLoad matches every error produced while loading the shared
	// template or font resources of a generation session.
	ErrResourceLoad = errors.New("certgen: resource load failed")

	// ErrEmptySelection is returned when a batch is requested with no recipients.
	ErrEmptySelection = errors.New("certgen: no recipients selected")

	// ErrRender matches every per-recipient rendering failure.
	ErrRender = errors.New("certgen: render failed")
)

// ResourceLoadError is returned when the template or a font could not be
// fetched or parsed. It is fatal to the whole generation session.
type ResourceLoadError struct {
	// Resource names what failed to load, e.g. "template" or "font:Medium".
	Resource string
	Err      error
}

func (e *ResourceLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("certgen: load %s", e.Resource)
	}
	return fmt.Sprintf("certgen: load %s: %v", e.Resource, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// Is reports ErrResourceLoad as a match.
func (e *ResourceLoadError) Is(target error) bool { return target == ErrResourceLoad }

// TemplateError is returned when the template document cannot be parsed.
// It is a resource load failure: no recipient can render without a template.
type TemplateError struct {
	Err error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("certgen: invalid template: %v", e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Is reports ErrResourceLoad as a match.
func (e *TemplateError) Is(target error) bool { return target == ErrResourceLoad }

// RenderError is returned when embedding fonts or drawing failed for one
// recipient. Inside a batch it is recovered: the recipient is skipped.
type RenderError struct {
	RecipientID string
	Err         error
}

func (e *RenderError) Error() string {
	if e.RecipientID == "" {
		return fmt.Sprintf("certgen: render: %v", e.Err)
	}
	return fmt.Sprintf("certgen: render recipient %q: %v", e.RecipientID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Is reports ErrRender as a match.
func (e *RenderError) Is(target error) bool { return target == ErrRender }

// UserMessage converts an error into the short message shown to the end user.
// It returns an empty string for a nil error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptySelection):
		return "Selecciona al menos un participante para generar constancias."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "La generación de constancias fue cancelada."
	case errors.Is(err, ErrRender):
		return "No se pudo generar la constancia."
	case errors.Is(err, ErrResourceLoad):
		return "No se pudieron cargar la plantilla o las fuentes de la constancia."
	default:
		return "Ocurrió un error al generar las constancias."
	}
}
