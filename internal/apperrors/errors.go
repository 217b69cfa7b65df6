package apperrors

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Kind classifies an error into one of the categories the API reports.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is a classified application error. Detail is the human-readable
// message rendered to the caller; Err is the underlying cause, if any.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with the given kind and detail.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap builds an Error keeping the underlying cause.
func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FromDB translates a GORM error into a classified Error. Constraint
// violations arrive as the typed errors the driver translators produce, so no
// matching on driver message text is needed. notFoundDetail is used when the
// record does not exist.
func FromDB(err error, notFoundDetail string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(KindNotFound, notFoundDetail)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(KindConflict, "resource with this value already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Wrap(KindBadRequest, "referenced resource does not exist", err)
	default:
		return Wrap(KindInternal, "database error", err)
	}
}

func httpStatus(kind Kind) int {
	switch kind {
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the single place errors escaping a handler become HTTP
// responses. Every non-2xx body carries a "detail" field. Unclassified errors
// are logged with their cause and reported generically.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		detail := appErr.Detail
		switch appErr.Kind {
		case KindConflict, KindBadRequest:
			// Attach the originating database message for constraint violations.
			if appErr.Err != nil {
				detail = fmt.Sprintf("%s: %v", appErr.Detail, appErr.Err)
			}
		case KindInternal:
			log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		}
		return c.Status(httpStatus(appErr.Kind)).JSON(fiber.Map{"detail": detail})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
	}

	log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "an unexpected error occurred",
	})
}
