// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the output printers for rendering networking service resources,
// either as tables or in one of the structured formats.

package command

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/api"
	"github.com/spf13/cobra"
	"github.com/thediveo/klo"
)

// Builtin custom-columns templates
const (
	// NameListTemplate for handling "-o name" and only showing the resource
	// IDs; this template should be used with no headers shown, as kubectl and
	// others do.
	NameListTemplate = "ID:{.id}"
	// RecordTemplate defines the custom columns when showing a single record.
	RecordTemplate = "FIELD:{.Field},VALUE:{.Value}"
)

// AddOutputFlags adds the output format flags to the specified command; if
// sortable is true, then additionally the "--sort-by" flag.
func AddOutputFlags(cmd *cobra.Command, sortable bool) {
	cmd.Flags().StringP("output", "o", "",
		"Output format. One of: json|yaml|wide|name|custom-columns=...|custom-columns-file=...|jsonpath=...|jsonpath-file=...")
	cmd.Flags().Bool("no-headers", false, "When using the default or custom-column output format, don't print headers (default print headers).")
	if sortable {
		cmd.Flags().String("sort-by", "",
			"If non-empty, sort custom-columns using this field specification. The field specification is expressed as a JSONPath expression (e.g. '{.name}').")
	}
}

// ColumnsSpec returns the custom-columns specification for the given columns.
func ColumnsSpec(cols taasctl.Columns) string {
	specs := make([]string, 0, len(cols))
	for _, col := range cols {
		specs = append(specs, fmt.Sprintf("%s:{.%s}", col.Label, col.Field))
	}
	return strings.Join(specs, ",")
}

// PrintRecords prints a listing of records, using the short columns by
// default and the long columns in "wide" output format. Custom-columns output
// works on rows that contain all long columns, with missing values rendered
// empty; the other output formats get the records as returned by the
// networking service.
func PrintRecords(cmd *cobra.Command, recs api.Records, short, long taasctl.Columns) error {
	prn, err := getPrinter(cmd, &klo.Specs{
		DefaultColumnSpec: ColumnsSpec(short),
		WideColumnSpec:    ColumnsSpec(long),
	})
	if err != nil {
		return err
	}
	_, table := prn.(*klo.CustomColumnsPrinter)
	// ...throwing in sorting, if asked for. Without sorting, the rows keep
	// the order of the networking service's listing.
	if sortby, err := cmd.Flags().GetString("sort-by"); err == nil && sortby != "" {
		if !table {
			prn = &sortedRecordsPrinter{prn}
		}
		prn, err = klo.NewSortingPrinter(sortby, prn)
		if err != nil {
			return fmt.Errorf("invalid --sort-by: %w", err)
		}
	}
	if !table {
		return prn.Fprint(cmd.OutOrStdout(), recs)
	}
	rows := make([]map[string]string, 0, len(recs))
	for _, rec := range recs {
		row := make(map[string]string, len(long))
		for idx, value := range long.Project(rec) {
			row[long[idx].Field] = Display(value)
		}
		rows = append(rows, row)
	}
	return prn.Fprint(cmd.OutOrStdout(), rows)
}

// sortedRecordsPrinter receives the sorted values from a klo sorting printer
// and passes them on as records, as only the custom-columns printer
// understands reflection values.
type sortedRecordsPrinter struct {
	klo.ValuePrinter
}

func (p *sortedRecordsPrinter) Fprint(w io.Writer, v interface{}) error {
	vals, ok := v.([]reflect.Value)
	if !ok {
		return p.ValuePrinter.Fprint(w, v)
	}
	recs := make(api.Records, 0, len(vals))
	for _, val := range vals {
		if val.Kind() == reflect.Interface || val.Kind() == reflect.Pointer {
			val = val.Elem()
		}
		switch rec := val.Interface().(type) {
		case api.Record:
			recs = append(recs, rec)
		case map[string]any:
			recs = append(recs, api.Record(rec))
		default:
			return fmt.Errorf("cannot print sorted %T", rec)
		}
	}
	return p.ValuePrinter.Fprint(w, recs)
}

// fieldValue is a single row of a single-record table.
type fieldValue struct {
	Field string
	Value string
}

// PrintRecord prints a single record. Table output shows one row per column,
// with the column's label and the record's value.
func PrintRecord(cmd *cobra.Command, rec api.Record, cols taasctl.Columns) error {
	prn, err := getPrinter(cmd, &klo.Specs{
		DefaultColumnSpec: RecordTemplate,
		WideColumnSpec:    RecordTemplate,
	})
	if err != nil {
		return err
	}
	if _, table := prn.(*klo.CustomColumnsPrinter); !table {
		return prn.Fprint(cmd.OutOrStdout(), rec)
	}
	if outfmt, _ := cmd.Flags().GetString("output"); outfmt == "name" {
		return prn.Fprint(cmd.OutOrStdout(), api.Records{rec})
	}
	rows := make([]fieldValue, 0, len(cols))
	for idx, value := range cols.Project(rec) {
		rows = append(rows, fieldValue{Field: cols[idx].Label, Value: Display(value)})
	}
	return prn.Fprint(cmd.OutOrStdout(), rows)
}

// Display renders a JSON value for table output: nil becomes empty, strings
// stay as they are, and everything else gets JSON-encoded.
func Display(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool, float64, int:
		return fmt.Sprint(v)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(b)
}

// getPrinter returns a value printer configured according to the output format
// chosen by the user, and some more optional output configuration flags.
func getPrinter(cmd *cobra.Command, specs *klo.Specs) (prn klo.ValuePrinter, err error) {
	outfmt, err := cmd.Flags().GetString("output")
	if err != nil {
		return
	}
	if outfmt == "name" {
		// Support "-o name" output format which uses our builtin
		// custom-columns template to only show resource IDs, and hide the
		// column header.
		prn, err = klo.PrinterFromFlag("custom-columns="+NameListTemplate, nil)
		if err != nil {
			return
		}
		prn.(*klo.CustomColumnsPrinter).HideHeaders = true
		return
	}
	// For the other output format option, let the kubectl-like output package
	// handle the details and give us just the printer suitable for dumping the
	// resources onto our users.
	prn, err = klo.PrinterFromFlag(outfmt, specs)
	if err != nil {
		return
	}
	if ccprn, ok := prn.(*klo.CustomColumnsPrinter); ok {
		ccprn.Padding = 3
		if noheaders, err := cmd.Flags().GetBool("no-headers"); err == nil {
			ccprn.HideHeaders = noheaders
		}
	}
	return
}
