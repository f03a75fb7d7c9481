package sim

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventLogger", func() {
	var (
		mockCtrl *gomock.Controller
		buf      bytes.Buffer
		logger   *EventLogger
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		buf.Reset()
		logger = NewEventLogger(log.New(&buf, "", 0))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should log events handled by a hooked engine", func() {
		handler := NewMockHandler(mockCtrl)
		evt := NewMockEvent(mockCtrl)

		evt.EXPECT().Time().Return(VTimeInNs(7)).AnyTimes()
		evt.EXPECT().Handler().Return(handler).AnyTimes()
		evt.EXPECT().IsSecondary().Return(false).AnyTimes()
		handler.EXPECT().Handle(evt)

		engine := NewSerialEngine()
		engine.AcceptHook(logger)

		engine.Schedule(evt)
		Expect(engine.Run()).To(Succeed())

		Expect(buf.String()).To(ContainSubstring("7"))
	})

	It("should ignore after-event hook positions", func() {
		logger.Func(HookCtx{Pos: HookPosAfterEvent})

		Expect(buf.Len()).To(Equal(0))
	})
})
