// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taasctl

import "time"

const (
	// DefaultServiceTimeout specifies the time limit for completing a single
	// request to the networking service, including reading the response.
	DefaultServiceTimeout = 30 * time.Second

	// DefaultAPIPath is the API version root below the service endpoint.
	DefaultAPIPath = "v2.0"
)
