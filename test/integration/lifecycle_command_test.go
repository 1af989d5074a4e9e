package integration_test

import (
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Reminder CLI", func() {
	var storePath string

	BeforeEach(func() {
		storePath = filepath.Join(GinkgoT().TempDir(), "reminders.json")
	})

	run := func(args ...string) *gexec.Session {
		full := append([]string{"--store", storePath}, args...)
		command := exec.Command(pathToCLI, full...)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		return session
	}

	Describe("create, list, next, ack, delete", func() {
		Context("when a daily reminder is created", func() {
			It("walks the reminder through its full lifecycle", func() {
				session := run("create", "-", "9", "drink", "water")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("created reminder #1"))

				session = run("list")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("drink water"))

				session = run("next", "1", "-c", "2")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("next 2 occurrence"))

				session = run("ack", "1", "999")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("stale"))

				session = run("delete", "1")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("deleted reminder #1"))

				session = run("list")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("no reminders"))
			})
		})
	})

	Describe("explain", func() {
		Context("when previewing a pattern before committing to it", func() {
			It("computes the first occurrence without persisting a reminder", func() {
				session := run("explain", "-", "9", "stretch")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("first occurrence:"))

				session = run("list")
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("no reminders"))
			})
		})
	})

	Describe("error handling", func() {
		Context("when reminder text doesn't match the grammar", func() {
			It("exits non-zero instead of silently misparsing", func() {
				session := run("create", "every", "day", "nonsense")
				Eventually(session).Should(gexec.Exit(1))
			})
		})
	})
})
