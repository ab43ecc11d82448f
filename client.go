// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Declares the interface to the remote networking service.

package taasctl

import "github.com/siemens/taasctl/api"

// ResourceClient gives access to the tap services, tap flows, and ports of a
// networking service. Implementations are expected to block until the remote
// service has answered (or the request failed).
type ResourceClient interface {
	// Show returns the resource of the specified kind with the given ID. If
	// there is no such resource, the returned error satisfies
	// errors.Is(err, ErrNotFound).
	Show(kind api.Kind, id string) (api.Record, error)
	// List returns all resources of the specified kind, in the order returned
	// by the service. Implementations must retrieve all pages, if the service
	// paginates its listings.
	List(kind api.Kind) (api.Records, error)
	// Create a new resource of the specified kind with the given fields, and
	// return the created resource as seen by the service.
	Create(kind api.Kind, fields api.Record) (api.Record, error)
	// Update the given fields of the resource of the specified kind and with
	// the given ID, returning the updated resource.
	Update(kind api.Kind, id string, fields api.Record) (api.Record, error)
	// Delete the resource of the specified kind with the given ID.
	Delete(kind api.Kind, id string) error
}
