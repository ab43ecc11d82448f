// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements the create, list, show, set, and delete commands for any kind
// of networking service resource, driven by the kind's descriptor.

package resource

import (
	"fmt"
	"strings"

	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/api"
	"github.com/siemens/taasctl/cli/command"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// ClientFactory returns the networking service client the commands should
// use; it gets called only once a command actually runs.
type ClientFactory func() (taasctl.ResourceClient, error)

// NewCommand returns a new parent command for the resource kind described by
// d, with the create, list, show, set, and delete sub commands. It panics if
// the descriptor is invalid.
func NewCommand(d Descriptor, newClient ClientFactory) *cobra.Command {
	if err := d.Validate(); err != nil {
		panic(err)
	}
	cmd := &cobra.Command{
		Use:     d.Use,
		Aliases: d.Aliases,
		Short:   fmt.Sprintf("Manage %s", d.Kind.Nouns()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		newCreateCmd(d, newClient),
		newListCmd(d, newClient),
		newShowCmd(d, newClient),
		newSetCmd(d, newClient),
		newDeleteCmd(d, newClient),
	)
	return cmd
}

func newCreateCmd(d Descriptor, newClient ClientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [flags]",
		Short: fmt.Sprintf("Create a new %s", d.Kind.Noun()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkChoices(cmd, d.Fields); err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			attrs, err := fieldValues(cmd, d.Fields, taasctl.NewResolver(client))
			if err != nil {
				return err
			}
			log.Debugf("creating %s with %v", d.Kind.Noun(), attrs)
			rec, err := client.Create(d.Kind, attrs)
			if err != nil {
				return err
			}
			return command.PrintRecord(cmd, rec, d.Attributes.RecordColumns(rec))
		},
	}
	addFieldFlags(cmd, d.Fields, false)
	command.AddOutputFlags(cmd, false)
	return cmd
}

func newListCmd(d Descriptor, newClient ClientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [flags]",
		Aliases: []string{"ls"},
		Short:   fmt.Sprintf("List %s", d.Kind.Nouns()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			recs, err := client.List(d.Kind)
			if err != nil {
				return err
			}
			// A long listing is just the "wide" output format in disguise,
			// unless the user asked for a specific output format anyway.
			if long, _ := cmd.Flags().GetBool("long"); long {
				if outfmt, _ := cmd.Flags().GetString("output"); outfmt == "" {
					if err := cmd.Flags().Set("output", "wide"); err != nil {
						panic(err)
					}
				}
			}
			return command.PrintRecords(cmd, recs,
				d.Attributes.Columns(false), d.Attributes.Columns(true))
		},
	}
	cmd.Flags().Bool("long", false, "List additional fields in output")
	command.AddOutputFlags(cmd, true)
	return cmd
}

func newShowCmd(d Descriptor, newClient ClientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [flags] NAME_OR_ID",
		Short: fmt.Sprintf("Display %s details", d.Kind.Noun()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			id, err := taasctl.NewResolver(client).Resolve(d.Kind, args[0])
			if err != nil {
				return err
			}
			rec, err := client.Show(d.Kind, id)
			if err != nil {
				return err
			}
			return command.PrintRecord(cmd, rec, d.Attributes.RecordColumns(rec))
		},
	}
	command.AddOutputFlags(cmd, false)
	return cmd
}

func newSetCmd(d Descriptor, newClient ClientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [flags] NAME_OR_ID",
		Short: fmt.Sprintf("Set %s properties", d.Kind.Noun()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := updatableFields(d.Fields)
			if err := checkChoices(cmd, fields); err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			resolver := taasctl.NewResolver(client)
			id, err := resolver.Resolve(d.Kind, args[0])
			if err != nil {
				return err
			}
			attrs, err := fieldValues(cmd, fields, resolver)
			if err != nil {
				return err
			}
			if _, err := client.Update(d.Kind, id, attrs); err != nil {
				return fmt.Errorf("failed to update %s '%s': %w", d.Kind.Noun(), args[0], err)
			}
			return nil
		},
	}
	addFieldFlags(cmd, updatableFields(d.Fields), true)
	return cmd
}

func newDeleteCmd(d Descriptor, newClient ClientFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [flags] NAME_OR_ID...",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Delete %s(s)", d.Kind.Noun()),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			return taasctl.DeleteAll(client, d.Kind, args)
		},
	}
}

// addFieldFlags adds a string flag for each of the fields; unless for
// updates, required fields get their flags marked as required.
func addFieldFlags(cmd *cobra.Command, fields []Field, update bool) {
	for _, field := range fields {
		usage := field.Usage
		if len(field.Choices) > 0 {
			usage += " (one of: " + strings.Join(field.Choices, ", ") + ")"
		}
		if field.Resolve != "" {
			usage += " (name or ID)"
		}
		cmd.Flags().String(field.Flag, "", usage)
		if field.Required && !update {
			if err := cmd.MarkFlagRequired(field.Flag); err != nil {
				panic(err)
			}
		}
	}
}

// updatableFields returns only the fields that can be changed on existing
// resources.
func updatableFields(fields []Field) []Field {
	updatable := []Field{}
	for _, field := range fields {
		if field.Updatable {
			updatable = append(updatable, field)
		}
	}
	return updatable
}

// flagValue returns the (optionally upper-cased) value of the field's flag
// and whether the flag was given on the command line at all.
func flagValue(cmd *cobra.Command, field Field) (string, bool) {
	if !cmd.Flags().Changed(field.Flag) {
		return "", false
	}
	value, _ := cmd.Flags().GetString(field.Flag)
	if field.Uppercase {
		value = strings.ToUpper(value)
	}
	return value, true
}

// checkChoices checks the given flags against their allowed values, so users
// learn about invalid values before any request has been made.
func checkChoices(cmd *cobra.Command, fields []Field) error {
	for _, field := range fields {
		value, ok := flagValue(cmd, field)
		if !ok || len(field.Choices) == 0 {
			continue
		}
		if !slices.Contains(field.Choices, value) {
			return fmt.Errorf("invalid argument %q for \"--%s\" flag: must be one of %s",
				value, field.Flag, strings.Join(field.Choices, ", "))
		}
	}
	return nil
}

// fieldValues returns the resource fields for the flags given on the command
// line, resolving names of referenced resources into their IDs. Flags given
// with an empty value are passed on as empty fields.
func fieldValues(cmd *cobra.Command, fields []Field, resolver *taasctl.Resolver) (api.Record, error) {
	attrs := api.Record{}
	for _, field := range fields {
		value, ok := flagValue(cmd, field)
		if !ok {
			continue
		}
		if field.Resolve != "" {
			id, err := resolver.Resolve(field.Resolve, value)
			if err != nil {
				return nil, err
			}
			value = id
		}
		attrs[field.Key] = value
	}
	return attrs, nil
}
