package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/example/printadmin/internal/core/rules"
	"github.com/example/printadmin/internal/ports/primary"
)

// statusError is satisfied by transport errors that carry an HTTP response.
type statusError interface {
	error
	HTTPStatus() int
	ServerMessage() string
}

// Operation names used in fallback messages.
const (
	opFetch  = "fetch"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// entityKind describes one resource for user-facing messages.
type entityKind struct {
	name   string // "campus"
	plural string // "campuses"
	title  string // "Campus"
	scope  string // appended to conflict messages, e.g. " in this campus"
}

var (
	campusKind = entityKind{name: "campus", plural: "campuses", title: "Campus"}
	shopKind   = entityKind{name: "shop", plural: "shops", title: "Shop", scope: " in this campus"}
)

func (k entityKind) conflictMessage(name *string) string {
	if name == nil || *name == "" {
		return fmt.Sprintf("A %s with this name already exists%s. Please use a different name.", k.name, k.scope)
	}
	return fmt.Sprintf("A %s with the name \"%s\" already exists%s. Please use a different name.", k.name, *name, k.scope)
}

func (k entityKind) idRequired() string {
	return fmt.Sprintf("%s id is required", k.title)
}

func (k entityKind) busy(id string) string {
	return fmt.Sprintf("another change to %s %s is still in progress", k.name, id)
}

// classifyFailure turns a transport failure into the single user-facing
// message of a failed envelope. Checks run in order:
//  1. HTTP 400: the server's detail, else "Unable to <op> <entity>"
//  2. HTTP 409 or any mention of "unique": a duplicate-name conflict naming
//     the attempted value
//  3. anything else: the server's detail, else the raw error text, else
//     "Failed to <op> <entity>"
func classifyFailure(err error, op string, kind entityKind, name *string) string {
	var status int
	var detail string
	var se statusError
	if errors.As(err, &se) {
		status = se.HTTPStatus()
		detail = se.ServerMessage()
	}

	if status == http.StatusBadRequest {
		if detail != "" {
			return detail
		}
		return fmt.Sprintf("Unable to %s %s", op, kind.name)
	}

	if status == http.StatusConflict || mentionsUnique(detail) || mentionsUnique(errText(err)) {
		return kind.conflictMessage(name)
	}

	if detail != "" {
		return detail
	}
	if text := errText(err); text != "" {
		return text
	}
	target := kind.name
	if op == opFetch {
		target = kind.plural
	}
	return fmt.Sprintf("Failed to %s %s", op, target)
}

func mentionsUnique(s string) bool {
	return strings.Contains(strings.ToLower(s), "unique")
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// invalid builds the envelope for a payload rejected before any network call.
func invalid[T any](v rules.ValidationResult) *primary.Result[T] {
	return &primary.Result[T]{Success: false, Error: v.Error, Errors: v.Errors}
}
