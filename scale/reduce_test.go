package scale

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reduce", func() {
	It("should compute minimal cross factors", func() {
		f := Reduce(Millis, Micros)

		Expect(f.Left).To(Equal(uint64(1000)))
		Expect(f.Right).To(Equal(uint64(1)))
		Expect(f.SameBase).To(BeFalse())
	})

	It("should detect the same base with different terms", func() {
		f := Reduce(MustNew(2, 2000), Millis)

		Expect(f.SameBase).To(BeTrue())
		Expect(f.Left).To(Equal(uint64(1)))
		Expect(f.Right).To(Equal(uint64(1)))
	})

	It("should return zero factors for invalid ratios", func() {
		f := Reduce(Ratio{}, Millis)
		Expect(f).To(Equal(Factors{}))

		_, ok := f.LeftIntoRight(1, math.MaxUint64)
		Expect(ok).To(BeFalse())
		_, ok = f.RightIntoLeft(1, math.MaxUint64)
		Expect(ok).To(BeFalse())
		_, ok = f.Compare(1, 1, math.MaxUint64)
		Expect(ok).To(BeFalse())
		_, ok = f.Reciprocal(1, math.MaxUint64)
		Expect(ok).To(BeFalse())
	})

	It("should not overflow on the widest terms", func() {
		f := Reduce(MustNew(math.MaxUint32, 1), MustNew(1, math.MaxUint32))

		Expect(f.Left).To(Equal(uint64(math.MaxUint32) * math.MaxUint32))
		Expect(f.Right).To(Equal(uint64(1)))
	})

	Context("rescaling", func() {
		It("should move left ticks into the right base", func() {
			v, ok := Reduce(MustNew(1, 100), Millis).LeftIntoRight(1, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(10)))
		})

		It("should truncate and round up on request", func() {
			f := Reduce(Micros, Millis)

			v, ok := f.LeftIntoRight(1500, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(1)))

			v, ok = f.LeftIntoRightCeil(1500, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(2)))

			v, ok = f.LeftIntoRightCeil(2000, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(2)))
		})

		It("should promote to 64 bits before dividing", func() {
			// 7e9 does not fit 32 bits, the quotient does.
			v, ok := Reduce(MustNew(1, 3), MustNew(1, 7)).LeftIntoRight(1_000_000_000, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(2_333_333_333)))

			_, ok = Reduce(Secs, Nanos).LeftIntoRight(5, math.MaxUint32)
			Expect(ok).To(BeFalse())
		})

		It("should check the multiply within the width when aligning right to left", func() {
			f := Reduce(Millis, Secs)

			v, ok := f.RightIntoLeft(2, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(2000)))

			_, ok = f.RightIntoLeft(math.MaxUint32/1000+1, math.MaxUint32)
			Expect(ok).To(BeFalse())
		})
	})

	Context("comparing", func() {
		It("should compare across bases", func() {
			f := Reduce(MustNew(1, 10_000), Millis)

			c, ok := f.Compare(10, 1, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal(0))

			c, ok = f.Compare(11, 1, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal(1))

			c, ok = f.Compare(9, 1, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal(-1))
		})

		It("should be incomparable when scaling overflows", func() {
			_, ok := Reduce(Secs, Millis).Compare(math.MaxUint32, 1, math.MaxUint32)
			Expect(ok).To(BeFalse())
		})
	})

	Context("reciprocal", func() {
		It("should turn a kilohertz rate into a microsecond period", func() {
			f := Reduce(Kilohertz, Micros)
			Expect(f.ReciprocalNumerator()).To(Equal(uint64(1000)))

			v, ok := f.Reciprocal(1, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(1000)))
		})

		It("should turn a millisecond period into a hertz rate", func() {
			v, ok := Reduce(Millis, Hertz).Reciprocal(2, math.MaxUint32)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(500)))
		})

		It("should refuse zero", func() {
			_, ok := Reduce(Millis, Hertz).Reciprocal(0, math.MaxUint32)
			Expect(ok).To(BeFalse())
		})

		It("should range check the result", func() {
			_, ok := Reduce(Millis, Nanos).Reciprocal(1, math.MaxUint32)
			Expect(ok).To(BeFalse())
		})
	})

	DescribeTable("gcd",
		func(a, b, want uint64) {
			Expect(gcd(a, b)).To(Equal(want))
			Expect(gcd(b, a)).To(Equal(want))
		},
		Entry("zero", uint64(0), uint64(7), uint64(7)),
		Entry("coprime", uint64(9), uint64(28), uint64(1)),
		Entry("powers of two", uint64(1024), uint64(4096), uint64(1024)),
		Entry("mixed", uint64(1_000_000), uint64(32_768), uint64(64)),
		Entry("large", uint64(math.MaxUint32)*3, uint64(math.MaxUint32)*5, uint64(math.MaxUint32)),
	)
})
