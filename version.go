// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taasctl

// SemVersion is the semantic version of the taasctl package and its CLI.
const SemVersion = "0.3.1"
