// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taastest

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/api"
)

// Call records a single method call made to a FakeClient.
type Call struct {
	Method string // "Show", "List", "Create", "Update", or "Delete"
	Kind   api.Kind
	ID     string
	Fields api.Record
}

// FakeClient is an in-memory taasctl.ResourceClient for unit tests. It
// records all calls and can be told to fail calls for particular IDs. It is
// not safe for concurrent use.
type FakeClient struct {
	// Recorded calls, in call order.
	Calls []Call
	// Errors to return from Show, Update, and Delete for a particular
	// (kind, id), instead of working on the stored records.
	Errs map[Key]error
	// Error to return from List for a particular kind.
	ListErrs map[api.Kind]error

	recs map[api.Kind]api.Records
}

// Key identifies a resource by its kind and ID.
type Key struct {
	Kind api.Kind
	ID   string
}

var _ taasctl.ResourceClient = (*FakeClient)(nil)

// NewFakeClient returns a new fake client without any resources.
func NewFakeClient() *FakeClient {
	return &FakeClient{
		Errs:     map[Key]error{},
		ListErrs: map[api.Kind]error{},
		recs:     map[api.Kind]api.Records{},
	}
}

// Add adds records of the specified kind; records without an "id" get a
// freshly generated one. Add returns the IDs of the added records.
func (c *FakeClient) Add(kind api.Kind, recs ...api.Record) []string {
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		rec = clone(rec)
		if rec.ID() == "" {
			rec["id"] = uuid.NewString()
		}
		c.recs[kind] = append(c.recs[kind], rec)
		ids = append(ids, rec.ID())
	}
	return ids
}

// Records returns the stored records of the specified kind.
func (c *FakeClient) Records(kind api.Kind) api.Records {
	return c.recs[kind]
}

// CallsTo returns the recorded calls to the specified method.
func (c *FakeClient) CallsTo(method string) []Call {
	calls := []Call{}
	for _, call := range c.Calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// Show returns the stored record of the kind with the given ID.
func (c *FakeClient) Show(kind api.Kind, id string) (api.Record, error) {
	c.Calls = append(c.Calls, Call{Method: "Show", Kind: kind, ID: id})
	if err := c.Errs[Key{kind, id}]; err != nil {
		return nil, err
	}
	idx := c.index(kind, id)
	if idx < 0 {
		return nil, notFound(kind, id)
	}
	return clone(c.recs[kind][idx]), nil
}

// List returns copies of all stored records of the kind.
func (c *FakeClient) List(kind api.Kind) (api.Records, error) {
	c.Calls = append(c.Calls, Call{Method: "List", Kind: kind})
	if err := c.ListErrs[kind]; err != nil {
		return nil, err
	}
	recs := make(api.Records, 0, len(c.recs[kind]))
	for _, rec := range c.recs[kind] {
		recs = append(recs, clone(rec))
	}
	return recs, nil
}

// Create stores a new record of the kind with a generated ID.
func (c *FakeClient) Create(kind api.Kind, fields api.Record) (api.Record, error) {
	c.Calls = append(c.Calls, Call{Method: "Create", Kind: kind, Fields: clone(fields)})
	rec := clone(fields)
	rec["id"] = uuid.NewString()
	c.recs[kind] = append(c.recs[kind], rec)
	return clone(rec), nil
}

// Update merges the fields into the stored record of the kind with the given
// ID.
func (c *FakeClient) Update(kind api.Kind, id string, fields api.Record) (api.Record, error) {
	c.Calls = append(c.Calls, Call{Method: "Update", Kind: kind, ID: id, Fields: clone(fields)})
	if err := c.Errs[Key{kind, id}]; err != nil {
		return nil, err
	}
	idx := c.index(kind, id)
	if idx < 0 {
		return nil, notFound(kind, id)
	}
	for field, value := range fields {
		c.recs[kind][idx][field] = value
	}
	return clone(c.recs[kind][idx]), nil
}

// Delete removes the stored record of the kind with the given ID.
func (c *FakeClient) Delete(kind api.Kind, id string) error {
	c.Calls = append(c.Calls, Call{Method: "Delete", Kind: kind, ID: id})
	if err := c.Errs[Key{kind, id}]; err != nil {
		return err
	}
	idx := c.index(kind, id)
	if idx < 0 {
		return notFound(kind, id)
	}
	c.recs[kind] = append(c.recs[kind][:idx], c.recs[kind][idx+1:]...)
	return nil
}

func (c *FakeClient) index(kind api.Kind, id string) int {
	for idx, rec := range c.recs[kind] {
		if rec.ID() == id {
			return idx
		}
	}
	return -1
}

func notFound(kind api.Kind, id string) error {
	return &taasctl.NotFoundError{
		Kind:     kind,
		NameOrID: id,
		Message:  fmt.Sprintf("%s %s could not be found", kind.Noun(), id),
	}
}

func clone(rec api.Record) api.Record {
	c := make(api.Record, len(rec))
	for field, value := range rec {
		c[field] = value
	}
	return c
}
