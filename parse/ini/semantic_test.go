package ini

import (
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

const duplicates = "top = 0\r\n[s]\r\nk=1\r\nK=2\r\n; k=3\r\n[S]\r\nk=4\r\nj=5\r\n[t]\r\nq = 'quoted'\r\n"

func TestLookup(t *testing.T) {
	doc := Parse(duplicates)

	convey.Convey("first section and first key win", t, func() {
		v, err := doc.Get("S", "K")
		convey.So(err, convey.ShouldBeNil)
		convey.So(v, convey.ShouldEqual, "1")

		_, err = doc.Get("s", "j")
		convey.So(errors.Is(err, ErrKeyNotFound), convey.ShouldBeTrue)
	})

	convey.Convey("quoted values come back without quotes", t, func() {
		v, err := doc.Get("T", "Q")
		convey.So(err, convey.ShouldBeNil)
		convey.So(v, convey.ShouldEqual, "quoted")
	})

	convey.Convey("missing section", t, func() {
		_, err := doc.Get("nope", "k")
		convey.So(errors.Is(err, ErrSectionNotFound), convey.ShouldBeTrue)
		convey.So(errors.Is(err, ErrKeyNotFound), convey.ShouldBeFalse)
	})

	convey.Convey("keys before the first section", t, func() {
		kv, ok := doc.KeyValue("TOP")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(kv.Value, convey.ShouldEqual, "0")
	})

	convey.Convey("names are listed once in file order", t, func() {
		convey.So(doc.SectionNames(), convey.ShouldResemble, []string{"s", "t"})
		s, ok := doc.Section("s")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(s.Keys(), convey.ShouldResemble, []string{"k", "; k"})
	})

	convey.Convey("to map", t, func() {
		convey.So(doc.ToMap(), convey.ShouldResemble, map[string]map[string]string{
			"":  {"top": "0"},
			"s": {"k": "1", "; k": "3"},
			"t": {"q": "quoted"},
		})
	})

	convey.Convey("an empty section name shares the entry of keys outside sections", t, func() {
		m := Parse("k=outside\r\n[]\r\nK=inside\r\nj=1\r\n").ToMap()
		convey.So(m, convey.ShouldResemble, map[string]map[string]string{
			"": {"k": "outside", "j": "1"},
		})
	})

	convey.Convey("a commented-out assignment is still a key", t, func() {
		s, _ := doc.Section("s")
		kv, ok := s.KeyValue("; K")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(kv.Value, convey.ShouldEqual, "3")
	})
}
