// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// This loosely typed data model matches the JSON documents exchanged with the
// networking service for tap services, tap flows, and ports. We deliberately
// don't model the individual resource types as structs: the service is
// authoritative on which fields a resource carries in which state, so we pass
// records through as-is and only pick the fields we want to show.

package api

// Record is a single remote resource, mapping field names to their JSON
// values. Values are typically strings, but might be nil or any other JSON
// value.
type Record map[string]any

// Records is a list of remote resources, in the order returned by the service.
type Records []Record

// ID returns the "id" field of the record, or "" if missing or not a string.
func (r Record) ID() string {
	return r.String("id")
}

// String returns the string value of the named field. It returns "" if the
// field is missing or not a string.
func (r Record) String(field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}

// Link is a pagination link as returned in the "<plural>_links" element of
// collection listings.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// ServiceError is the error document returned by the networking service in
// the body of non-successful responses.
type ServiceError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	} `json:"NeutronError"`
}
