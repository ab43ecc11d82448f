// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/api"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var attrs = taasctl.AttributeSpec{
	{Field: "id", Label: "ID", Visibility: taasctl.ListBoth},
	{Field: "name", Label: "Name", Visibility: taasctl.ListBoth},
	{Field: "description", Label: "Description", Visibility: taasctl.ListLongOnly},
}

var recs = api.Records{
	{"id": "2", "name": "zulu", "description": "last"},
	{"id": "1", "name": "alpha"},
}

// newOutputCmd returns a command with the output flags set as specified, and
// the buffer the command writes its output to.
func newOutputCmd(flags map[string]string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	AddOutputFlags(cmd, true)
	for name, value := range flags {
		Expect(cmd.Flags().Set(name, value)).To(Succeed())
	}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

var _ = Describe("output", func() {

	DescribeTable("displaying values",
		func(value any, expected string) {
			Expect(Display(value)).To(Equal(expected))
		},
		Entry("nil", nil, ""),
		Entry("string", "ACTIVE", "ACTIVE"),
		Entry("bool", true, "true"),
		Entry("number", float64(42), "42"),
		Entry("list", []any{"a", "b"}, `["a","b"]`),
		Entry("object", map[string]any{"a": float64(1)}, `{"a":1}`),
	)

	It("builds column specifications", func() {
		Expect(ColumnsSpec(attrs.Columns(false))).To(Equal("ID:{.id},Name:{.name}"))
		Expect(ColumnsSpec(attrs.Columns(true))).To(
			Equal("ID:{.id},Name:{.name},Description:{.description}"))
		Expect(ColumnsSpec(nil)).To(BeEmpty())
	})

	It("prints short listings", func() {
		cmd, out := newOutputCmd(nil)
		Expect(PrintRecords(cmd, recs, attrs.Columns(false), attrs.Columns(true))).To(Succeed())
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(MatchRegexp(`^ID\s+Name\s*$`))
		Expect(lines[1]).To(MatchRegexp(`^2\s+zulu\s*$`))
		Expect(lines[2]).To(MatchRegexp(`^1\s+alpha\s*$`))
	})

	It("prints wide listings with empty placeholders", func() {
		cmd, out := newOutputCmd(map[string]string{"output": "wide", "no-headers": "true"})
		Expect(PrintRecords(cmd, recs, attrs.Columns(false), attrs.Columns(true))).To(Succeed())
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(MatchRegexp(`^2\s+zulu\s+last\s*$`))
		Expect(lines[1]).To(MatchRegexp(`^1\s+alpha\s*$`))
	})

	It("sorts listings", func() {
		cmd, out := newOutputCmd(map[string]string{"sort-by": "{.name}"})
		Expect(PrintRecords(cmd, recs, attrs.Columns(false), attrs.Columns(true))).To(Succeed())
		Expect(strings.Index(out.String(), "alpha")).To(BeNumerically("<", strings.Index(out.String(), "zulu")))
	})

	DescribeTable("sorts structured listings",
		func(format string, unmarshal func([]byte, any) error) {
			cmd, out := newOutputCmd(map[string]string{"output": format, "sort-by": "{.name}"})
			Expect(PrintRecords(cmd, recs, attrs.Columns(false), attrs.Columns(true))).To(Succeed())
			var printed api.Records
			Expect(unmarshal(out.Bytes(), &printed)).To(Succeed())
			Expect(printed).To(Equal(api.Records{recs[1], recs[0]}))
		},
		Entry("json", "json", json.Unmarshal),
		Entry("yaml", "yaml", yaml.Unmarshal),
	)

	It("prints only IDs", func() {
		cmd, out := newOutputCmd(map[string]string{"output": "name"})
		Expect(PrintRecords(cmd, recs, attrs.Columns(false), attrs.Columns(true))).To(Succeed())
		Expect(strings.Fields(out.String())).To(Equal([]string{"2", "1"}))
	})

	It("prints listings as JSON", func() {
		cmd, out := newOutputCmd(map[string]string{"output": "json"})
		Expect(PrintRecords(cmd, recs, attrs.Columns(false), attrs.Columns(true))).To(Succeed())
		var printed api.Records
		Expect(json.Unmarshal(out.Bytes(), &printed)).To(Succeed())
		Expect(printed).To(Equal(recs))
	})

	It("rejects invalid output formats", func() {
		cmd, _ := newOutputCmd(map[string]string{"output": "foobar"})
		Expect(PrintRecords(cmd, recs, attrs.Columns(false), attrs.Columns(true))).NotTo(Succeed())
	})

	It("prints single records", func() {
		rec := api.Record{"id": "1", "name": "alpha", "extra": nil}
		cmd, out := newOutputCmd(nil)
		Expect(PrintRecord(cmd, rec, attrs.RecordColumns(rec))).To(Succeed())
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(MatchRegexp(`^FIELD\s+VALUE\s*$`))
		Expect(lines[1]).To(MatchRegexp(`^ID\s+1\s*$`))
		Expect(lines[2]).To(MatchRegexp(`^Name\s+alpha\s*$`))
		Expect(lines[3]).To(MatchRegexp(`^extra\s*$`))

		cmd, out = newOutputCmd(map[string]string{"output": "name"})
		Expect(PrintRecord(cmd, rec, attrs.RecordColumns(rec))).To(Succeed())
		Expect(strings.TrimSpace(out.String())).To(Equal("1"))

		cmd, out = newOutputCmd(map[string]string{"output": "json"})
		Expect(PrintRecord(cmd, rec, attrs.RecordColumns(rec))).To(Succeed())
		var printed api.Record
		Expect(json.Unmarshal(out.Bytes(), &printed)).To(Succeed())
		Expect(printed).To(Equal(rec))
	})

})
