package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventBase", func() {
	var mockCtrl *gomock.Controller

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should carry the time and handler it was created with", func() {
		handler := NewMockHandler(mockCtrl)

		evt := NewEventBase(10, handler)

		Expect(evt.Time()).To(Equal(VTimeInNs(10)))
		Expect(evt.Handler()).To(BeIdenticalTo(handler))
		Expect(evt.IsSecondary()).To(BeFalse())
		Expect(evt.ID).NotTo(BeEmpty())
	})

	It("should let a kick starter retarget the handler", func() {
		kickStarter := NewMockHandler(mockCtrl)
		component := NewMockHandler(mockCtrl)

		evt := NewEventBase(0, kickStarter)
		evt.SetHandler(component)

		Expect(evt.Handler()).To(BeIdenticalTo(component))
	})

	It("should give each event a distinct ID", func() {
		handler := NewMockHandler(mockCtrl)

		first := NewEventBase(1, handler)
		second := NewEventBase(1, handler)

		Expect(first.ID).NotTo(Equal(second.ID))
	})
})
