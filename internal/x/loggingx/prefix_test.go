package loggingx_test

import (
	"github.com/dogmatiq/dodeca/logging"
	. "github.com/dogmatiq/mirror/internal/x/loggingx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("func WithPrefix()", func() {
	var target *logging.BufferedLogger

	BeforeEach(func() {
		target = &logging.BufferedLogger{
			CaptureDebug: true,
		}
	})

	It("prefixes formatted messages", func() {
		l := WithPrefix(target, "[%s] ", "resync")
		l.Log("synchronized %d workflows", 3)

		Expect(target.Messages()).To(ConsistOf(
			logging.BufferedLogMessage{
				Message: "[resync] synchronized 3 workflows",
			},
		))
	})

	It("does not treat percent signs in the prefix as format verbs", func() {
		l := WithPrefix(target, "[100%%] ")
		l.Debug("<%s>", "value")

		Expect(target.Messages()).To(ConsistOf(
			logging.BufferedLogMessage{
				Message: "[100%] <value>",
				IsDebug: true,
			},
		))
	})

	It("prefixes plain strings", func() {
		l := WithPrefix(target, "[watcher] ")
		l.LogString("%s is not a verb here")

		Expect(target.Messages()).To(ConsistOf(
			logging.BufferedLogMessage{
				Message: "[watcher] %s is not a verb here",
			},
		))
	})

	It("reports the debug state of the target", func() {
		l := WithPrefix(&logging.BufferedLogger{}, "")
		Expect(l.IsDebug()).To(BeFalse())

		l = WithPrefix(target, "")
		Expect(l.IsDebug()).To(BeTrue())
	})
})
