package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventQueue", func() {
	var (
		mockCtrl *gomock.Controller
		queue    *EventQueueImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		queue = NewEventQueue()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pop events in time order", func() {
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInNs(10)).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInNs(2)).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInNs(5)).AnyTimes()

		queue.Push(evt1)
		queue.Push(evt2)
		queue.Push(evt3)

		Expect(queue.Len()).To(Equal(3))
		Expect(queue.Peek().Time()).To(Equal(VTimeInNs(2)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInNs(2)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInNs(5)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInNs(10)))
		Expect(queue.Len()).To(Equal(0))
	})
})
