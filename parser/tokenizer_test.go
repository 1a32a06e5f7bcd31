package parser

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestTokenize(t *testing.T) {
	convey.Convey("Tokenize splits clauses and detects the operator", t, func() {
		tokens, err := Tokenize("tag=1,2,3;city!=bj, sh")
		convey.So(err, convey.ShouldBeNil)
		convey.So(tokens, convey.ShouldHaveLength, 2)

		convey.So(tokens[0].Field, convey.ShouldEqual, "tag")
		convey.So(tokens[0].Positive, convey.ShouldBeTrue)
		convey.So(tokens[0].Raw, convey.ShouldResemble, []string{"1", "2", "3"})

		convey.So(tokens[1].Field, convey.ShouldEqual, "city")
		convey.So(tokens[1].Positive, convey.ShouldBeFalse)
		convey.So(tokens[1].Raw, convey.ShouldResemble, []string{"bj", "sh"})
	})

	convey.Convey("Tokenize skips blank clauses", t, func() {
		tokens, err := Tokenize("tag=1;;  ;city=bj")
		convey.So(err, convey.ShouldBeNil)
		convey.So(tokens, convey.ShouldHaveLength, 2)
	})

	convey.Convey("Tokenize rejects malformed clauses", t, func() {
		_, err := Tokenize("tag")
		convey.So(err, convey.ShouldNotBeNil)

		_, err = Tokenize("=1,2")
		convey.So(err, convey.ShouldNotBeNil)

		_, err = Tokenize("tag=")
		convey.So(err, convey.ShouldNotBeNil)
	})
}
