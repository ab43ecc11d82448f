// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Defines the options common to all networking service client types -- not
// that there are that many, but this way we make explicit which options any
// client plugin should honor.

package taasctl

import "time"

// CommonClientOptions defines options common to all networking service client
// types.
type CommonClientOptions struct {
	// Token optionally specifies a pre-issued authentication token to pass
	// to the networking service. Getting hold of a token is not our business.
	Token string
	// Timeout specifies a time limit for each individual request made to the
	// networking service. Listings that span multiple pages get this time
	// limit per page.
	Timeout time.Duration
}
