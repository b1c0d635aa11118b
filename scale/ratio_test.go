package scale

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ratio", func() {
	It("should reject zero terms", func() {
		_, err := New(0, 1)
		Expect(err).To(MatchError(ErrInvalidRatio))

		_, err = New(1, 0)
		Expect(err).To(MatchError(ErrInvalidRatio))
	})

	It("should panic in MustNew on zero terms", func() {
		Expect(func() { MustNew(1, 0) }).To(Panic())
	})

	It("should reduce to lowest terms", func() {
		Expect(MustNew(2, 2000).Reduced()).To(Equal(Millis))
		Expect(MustNew(60, 1).Reduced()).To(Equal(Minutes))
	})

	It("should tell same-base ratios", func() {
		Expect(MustNew(2, 2000).SameBase(Millis)).To(BeTrue())
		Expect(Micros.SameBase(Millis)).To(BeFalse())
	})

	It("should print as num/den", func() {
		Expect(MustNew(1, 32768).String()).To(Equal("1/32768"))
	})

	DescribeTable("parsing",
		func(in string, want Ratio) {
			got, err := Parse(in)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("fraction", "1/1000", Millis),
		Entry("fraction with spaces", " 1 / 32768 ", Ratio{Num: 1, Den: 32768}),
		Entry("integer", "60", Minutes),
		Entry("millisecond symbol", "ms", Millis),
		Entry("microsecond symbol", "us", Micros),
		Entry("kilohertz symbol", "kHz", Kilohertz),
		Entry("hour symbol", "h", Hours),
	)

	DescribeTable("rejecting bad input",
		func(in string) {
			_, err := Parse(in)
			Expect(err).To(MatchError(ErrInvalidRatio))
		},
		Entry("empty", ""),
		Entry("zero denominator", "1/0"),
		Entry("zero numerator", "0/5"),
		Entry("negative", "-1/5"),
		Entry("too wide", "1/4294967296"),
		Entry("unknown symbol", "fortnight"),
	)

	It("should look up unit symbols by exact terms", func() {
		sym, ok := DurationSymbol(Millis)
		Expect(ok).To(BeTrue())
		Expect(sym).To(Equal("ms"))

		_, ok = DurationSymbol(MustNew(2, 2000))
		Expect(ok).To(BeFalse())

		sym, ok = RateSymbol(Megahertz)
		Expect(ok).To(BeTrue())
		Expect(sym).To(Equal("MHz"))
	})
})
