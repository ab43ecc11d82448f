// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resource

import (
	"fmt"

	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/api"
)

// Descriptor describes a kind of resource in terms of its CLI commands: the
// command name, the attributes to display, and the fields that can be set
// when creating or updating resources of this kind.
type Descriptor struct {
	// The kind of resource the commands work on.
	Kind api.Kind
	// Name of the parent command, such as "tap-service".
	Use string
	// Optional aliases of the parent command.
	Aliases []string
	// Attributes to display in listings and when showing single resources.
	Attributes taasctl.AttributeSpec
	// Fields settable from CLI flags.
	Fields []Field
}

// Field maps a CLI flag onto a resource field.
type Field struct {
	// Name of the CLI flag, without the leading "--".
	Flag string
	// Name of the resource field.
	Key string
	// Usage text of the CLI flag.
	Usage string
	// The flag must be given when creating a resource.
	Required bool
	// The field can also be changed on existing resources.
	Updatable bool
	// If non-empty, the flag value is a name or ID of a resource of this kind
	// that must be resolved into an ID.
	Resolve api.Kind
	// If non-empty, the only values accepted (after upper-casing, if
	// enabled).
	Choices []string
	// Convert the flag value to upper case.
	Uppercase bool
}

// CommonFields returns the name and description fields any resource kind
// has; they can be set on creation as well as later changed.
func CommonFields(kind api.Kind) []Field {
	return []Field{
		{
			Flag:      "name",
			Key:       "name",
			Usage:     fmt.Sprintf("Name of the %s", kind.Noun()),
			Updatable: true,
		},
		{
			Flag:      "description",
			Key:       "description",
			Usage:     fmt.Sprintf("Description for the %s", kind.Noun()),
			Updatable: true,
		},
	}
}

// Validate checks the descriptor for programming errors.
func (d Descriptor) Validate() error {
	if d.Kind == "" || d.Use == "" {
		return fmt.Errorf("descriptor lacks kind or command name")
	}
	if err := d.Attributes.Validate(); err != nil {
		return fmt.Errorf("%s: %w", d.Kind, err)
	}
	flags := map[string]struct{}{}
	keys := map[string]struct{}{}
	for _, field := range d.Fields {
		if _, ok := flags[field.Flag]; ok {
			return fmt.Errorf("%s: duplicate flag %q", d.Kind, field.Flag)
		}
		if _, ok := keys[field.Key]; ok {
			return fmt.Errorf("%s: duplicate field %q", d.Kind, field.Key)
		}
		flags[field.Flag] = struct{}{}
		keys[field.Key] = struct{}{}
	}
	return nil
}
