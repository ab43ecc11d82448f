// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Resolves user-supplied names or IDs of remote resources into resource IDs.

package taasctl

import (
	"errors"

	"github.com/siemens/taasctl/api"
	log "github.com/sirupsen/logrus"
)

// Resolver resolves names or IDs of resources into their IDs, using the
// networking service it has been given. A Resolver doesn't cache anything, so
// each resolution reflects the service's state at the time of the call.
type Resolver struct {
	client ResourceClient
}

// NewResolver returns a new Resolver using the specified client.
func NewResolver(client ResourceClient) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the ID of the resource of the given kind that is either
// identified by the ID nameOrID, or alternatively, carries the name nameOrID.
//
// Resolve first tries to directly fetch the resource, assuming nameOrID to be
// an ID. Only if that fails because there is no such resource, Resolve lists
// all resources of the kind and looks for an exact (case-sensitive) name
// match. If there isn't any match, the returned error satisfies
// errors.Is(err, ErrNotFound); if more than one resource carries the name,
// the error satisfies errors.Is(err, ErrAmbiguousName). All other errors from
// the client are returned as-is.
func (r *Resolver) Resolve(kind api.Kind, nameOrID string) (string, error) {
	// An empty name or ID would otherwise address the collection itself and
	// then match unnamed resources.
	if nameOrID == "" {
		return "", &NotFoundError{Kind: kind, NameOrID: nameOrID}
	}
	rec, err := r.client.Show(kind, nameOrID)
	if err == nil {
		if id := rec.ID(); id != "" {
			return id, nil
		}
		return nameOrID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}
	log.Debugf("no %s with ID %q, looking up by name", kind.Noun(), nameOrID)
	recs, err := r.client.List(kind)
	if err != nil {
		return "", err
	}
	ids := []string{}
	for _, rec := range recs {
		if name, ok := rec["name"].(string); ok && name == nameOrID {
			ids = append(ids, rec.ID())
		}
	}
	switch len(ids) {
	case 0:
		return "", &NotFoundError{Kind: kind, NameOrID: nameOrID}
	case 1:
		return ids[0], nil
	default:
		return "", &AmbiguousNameError{Kind: kind, Name: nameOrID, Matches: len(ids)}
	}
}
