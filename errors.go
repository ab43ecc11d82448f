// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taasctl

import (
	"errors"
	"fmt"

	"github.com/siemens/taasctl/api"
)

var (
	// ErrNotFound matches all errors reporting a missing resource, see also
	// NotFoundError.
	ErrNotFound = errors.New("resource not found")
	// ErrAmbiguousName matches all errors reporting multiple resources with
	// the same name, see also AmbiguousNameError.
	ErrAmbiguousName = errors.New("ambiguous resource name")
)

// NotFoundError reports that a resource either doesn't exist with a
// particular ID, or that no resource carries a particular name.
type NotFoundError struct {
	Kind     api.Kind
	NameOrID string
	// Optional message from the networking service.
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Unable to find %s with name or id '%s'", e.Kind, e.NameOrID)
}

// Is returns true for ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AmbiguousNameError reports that a name matched more than a single resource,
// so the caller needs to specify an ID instead.
type AmbiguousNameError struct {
	Kind    api.Kind
	Name    string
	Matches int
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("Multiple %s matches found for name '%s', use an ID to be more specific.",
		e.Kind, e.Name)
}

// Is returns true for ErrAmbiguousName.
func (e *AmbiguousNameError) Is(target error) bool {
	return target == ErrAmbiguousName
}

// TransportError reports any failure talking to the networking service that
// isn't a missing resource: connection failures, authentication failures,
// server faults, undecodable responses, et cetera. StatusCode is zero if
// there was no HTTP response at all.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	case e.StatusCode != 0:
		return fmt.Sprintf("networking service request failed (HTTP %d)", e.StatusCode)
	case e.Err != nil && e.Message != "":
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// BulkDeleteError reports that some of the resources in a bulk deletion
// could not be deleted. The individual failures have already been logged.
type BulkDeleteError struct {
	Kind   api.Kind
	Failed int
	Total  int
}

func (e *BulkDeleteError) Error() string {
	return fmt.Sprintf("%d of %d %s failed to be deleted.", e.Failed, e.Total, e.Kind.Nouns())
}
