// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Resource kinds of the tap-as-a-service extension, as well as the networking
// resources (ports) tap services and flows refer to.

package api

import "strings"

// Kind discriminates the different types of remote resources, such as
// "tap_service". It selects the REST collection path and the JSON envelope
// keys used when talking to the networking service.
type Kind string

// The resource kinds known to taasctl.
const (
	TapService Kind = "tap_service"
	TapFlow    Kind = "tap_flow"
	Port       Kind = "port"
)

// Kinds lists all known resource kinds.
var Kinds = []Kind{TapService, TapFlow, Port}

// Plural returns the plural form of the kind, which doubles as the collection
// name in REST paths and as the JSON envelope key of listings.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// CollectionPath returns the REST path of the collection of resources of this
// kind, relative to the API version root. Tap services and tap flows live
// below the "taas" extension prefix, while ports are core resources.
func (k Kind) CollectionPath() string {
	switch k {
	case TapService, TapFlow:
		return "taas/" + k.Plural()
	default:
		return k.Plural()
	}
}

// Noun returns the human-readable name of the kind, such as "tap service".
func (k Kind) Noun() string {
	return strings.ReplaceAll(string(k), "_", " ")
}

// Nouns returns the human-readable plural, such as "tap services".
func (k Kind) Nouns() string {
	return k.Noun() + "s"
}
