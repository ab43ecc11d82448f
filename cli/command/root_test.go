// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"

	"github.com/siemens/taasctl"
	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("root command", func() {

	It("shows the version", func() {
		root := SetupCLI()
		out := &bytes.Buffer{}
		root.SetOut(out)
		root.SetArgs([]string{"version"})
		Expect(root.Execute()).To(Succeed())
		Expect(out.String()).To(HavePrefix("taasctl version " + taasctl.SemVersion + " "))
	})

	It("lists global options", func() {
		root := SetupCLI()
		out := &bytes.Buffer{}
		root.SetOut(out)
		root.SetArgs([]string{"options"})
		Expect(root.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("--request-timeout"))
		Expect(out.String()).To(ContainSubstring("--token"))
		Expect(out.String()).To(ContainSubstring("--debug"))
	})

	It("resets global flags", func() {
		root := SetupCLI()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"--token", "sesame", "--request-timeout", "5s", "version"})
		Expect(root.Execute()).To(Succeed())
		Expect(Token).To(Equal("sesame"))

		_ = SetupCLI()
		Expect(Token).To(BeEmpty())
		Expect(ReqTimeout).To(BeZero())
	})

	It("marks annotated flags as mutually exclusive", func() {
		root := &cobra.Command{Use: "root"}
		pf := root.PersistentFlags()
		pf.String("foo", "", "")
		pf.String("bar", "", "")
		pf.String("baz", "", "")
		Annotate(pf, "foo", MutualFlagGroupAnnotation, "group")
		Annotate(pf, "bar", MutualFlagGroupAnnotation, "group")
		Annotate(pf, "baz", MutualFlagGroupAnnotation, "lonely")
		root.AddCommand(&cobra.Command{
			Use: "sub",
			RunE: func(*cobra.Command, []string) error {
				return nil
			},
		})
		mutuallyExclusives(root)
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})

		root.SetArgs([]string{"sub", "--foo=1", "--baz=2"})
		Expect(root.Execute()).To(Succeed())
		root.SetArgs([]string{"sub", "--foo=1", "--bar=2"})
		Expect(root.Execute()).To(MatchError(ContainSubstring("none of the others can be")))
	})

	It("reports missing clients", func() {
		_, err := NewClient()
		Expect(err).To(MatchError("no suitable networking service client; available clients: (none)"))
	})

})
