// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taasctl_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/siemens/taasctl"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("configuration", func() {

	writeConfig := func(content string) string {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
		return path
	}

	It("loads configuration files", func() {
		cfg, err := taasctl.LoadConfig(writeConfig(`
endpoint: https://controller:9696
token: sesame
timeout: 10s
insecure: true
api-path: v2.1
`), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(*cfg).To(Equal(taasctl.Config{
			Endpoint: "https://controller:9696",
			Token:    "sesame",
			Timeout:  10 * time.Second,
			Insecure: true,
			APIPath:  "v2.1",
		}))

		opts := cfg.ClientOptions()
		Expect(opts.Token).To(Equal("sesame"))
		Expect(opts.Timeout).To(Equal(10 * time.Second))
		Expect(opts.InsecureSkipVerify).To(BeTrue())
		Expect(opts.APIPath).To(Equal("v2.1"))
	})

	It("defaults the timeout", func() {
		cfg, err := taasctl.LoadConfig(writeConfig("endpoint: localhost:9696\n"), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.ClientOptions().Timeout).To(Equal(taasctl.DefaultServiceTimeout))
	})

	It("handles missing configuration files", func() {
		path := filepath.Join(GinkgoT().TempDir(), "missing.yaml")
		cfg, err := taasctl.LoadConfig(path, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(*cfg).To(BeZero())

		_, err = taasctl.LoadConfig(path, true)
		Expect(err).To(HaveOccurred())

		cfg, err = taasctl.LoadConfig("", true)
		Expect(err).NotTo(HaveOccurred())
		Expect(*cfg).To(BeZero())
	})

	It("rejects invalid configuration files", func() {
		_, err := taasctl.LoadConfig(writeConfig("endpoint: [foo"), true)
		Expect(err).To(MatchError(ContainSubstring("invalid configuration")))
		_, err = taasctl.LoadConfig(writeConfig("timeout: forever"), true)
		Expect(err).To(HaveOccurred())
		_, err = taasctl.LoadConfig(writeConfig("timeout: -1s"), true)
		Expect(err).To(MatchError(ContainSubstring("negative timeout")))
	})

})
