package cache_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/skinsight/engine/internal/adapters/cache"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1_700_000_000, 0)} }

func TestCacheBasics(t *testing.T) {
	Convey("Given an empty cache", t, func() {
		c := cache.New[string]()

		Convey("Then a missing key reports absent", func() {
			_, ok := c.Get("nope")
			So(ok, ShouldBeFalse)
			So(c.Len(), ShouldEqual, 0)
		})

		Convey("When a value is stored", func() {
			c.Set("k", "v")

			Convey("Then it is readable and counted", func() {
				v, ok := c.Get("k")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "v")
				So(c.Len(), ShouldEqual, 1)
			})

			Convey("Then overwriting replaces the value without growing", func() {
				c.Set("k", "v2")
				v, _ := c.Get("k")
				So(v, ShouldEqual, "v2")
				So(c.Len(), ShouldEqual, 1)
			})
		})
	})
}

func TestCacheCapacity(t *testing.T) {
	Convey("Given a cache with capacity 20", t, func() {
		clock := newFakeClock()
		c := cache.New[int](
			cache.WithCapacity[int](20),
			cache.WithClock[int](clock.now),
		)

		Convey("When capacity+1 distinct keys are inserted", func() {
			for i := 0; i <= 20; i++ {
				c.Set(fmt.Sprintf("key-%02d", i), i)
				clock.advance(time.Second)
			}

			Convey("Then exactly capacity entries remain", func() {
				So(c.Len(), ShouldEqual, 20)
			})

			Convey("Then the oldest-timestamped entry was evicted", func() {
				_, ok := c.Get("key-00")
				So(ok, ShouldBeFalse)
				_, ok = c.Get("key-01")
				So(ok, ShouldBeTrue)
				_, ok = c.Get("key-20")
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When an old entry is read before overflow", func() {
			for i := 0; i < 20; i++ {
				c.Set(fmt.Sprintf("key-%02d", i), i)
				clock.advance(time.Second)
			}
			// A read must not refresh recency: this is FIFO by age, not LRU.
			_, ok := c.Get("key-00")
			So(ok, ShouldBeTrue)

			c.Set("overflow", 99)

			Convey("Then the read entry is still the one evicted", func() {
				_, ok := c.Get("key-00")
				So(ok, ShouldBeFalse)
				_, ok = c.Get("overflow")
				So(ok, ShouldBeTrue)
			})
		})
	})

	Convey("Given an eviction callback", t, func() {
		clock := newFakeClock()
		var evicted []string
		c := cache.New[int](
			cache.WithCapacity[int](2),
			cache.WithClock[int](clock.now),
			cache.WithOnEvict[int](func(key string) { evicted = append(evicted, key) }),
		)

		Convey("When inserts push entries out", func() {
			c.Set("a", 1)
			clock.advance(time.Second)
			c.Set("b", 2)
			clock.advance(time.Second)
			c.Set("c", 3)
			c.Set("d", 4)

			Convey("Then the callback sees each evicted key oldest-first", func() {
				So(evicted, ShouldResemble, []string{"a", "b"})
			})
		})
	})
}

func TestCacheTTL(t *testing.T) {
	Convey("Given a cache with a 24h TTL", t, func() {
		clock := newFakeClock()
		c := cache.New[string](
			cache.WithTTL[string](24*time.Hour),
			cache.WithClock[string](clock.now),
		)
		c.Set("profile", "cached")

		Convey("When read just inside the TTL", func() {
			clock.advance(24*time.Hour - time.Millisecond)
			v, ok := c.Get("profile")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "cached")
		})

		Convey("When read after the TTL has elapsed", func() {
			clock.advance(24*time.Hour + time.Millisecond)
			_, ok := c.Get("profile")

			Convey("Then the entry reports absent and is lazily evicted", func() {
				So(ok, ShouldBeFalse)
				So(c.Len(), ShouldEqual, 0)
			})
		})

		Convey("When rewritten after expiry", func() {
			clock.advance(25 * time.Hour)
			c.Set("profile", "fresh")
			v, ok := c.Get("profile")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "fresh")
		})
	})

	Convey("Given a timestamp-only cache with TTL disabled", t, func() {
		clock := newFakeClock()
		c := cache.New[string](
			cache.WithTTL[string](0),
			cache.WithClock[string](clock.now),
		)
		c.Set("feed", "latest")

		Convey("Then entries never expire by age", func() {
			clock.advance(1000 * time.Hour)
			v, ok := c.Get("feed")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "latest")
		})
	})
}

func TestCachePersistence(t *testing.T) {
	Convey("Given a populated cache", t, func() {
		clock := newFakeClock()
		c := cache.New[string](cache.WithClock[string](clock.now))
		c.Set("a", "1")
		c.Set("b", "2")

		Convey("When snapshotted and restored into a fresh cache", func() {
			raw, err := c.SnapshotJSON()
			So(err, ShouldBeNil)

			restored := cache.New[string](cache.WithClock[string](clock.now))
			restored.RestoreJSON(raw)

			Convey("Then the contents survive", func() {
				v, ok := restored.Get("a")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "1")
				So(restored.Len(), ShouldEqual, 2)
			})
		})

		Convey("When restoring a corrupt snapshot", func() {
			restored := cache.New[string]()
			restored.RestoreJSON([]byte("{not json"))

			Convey("Then the cache fails open as empty", func() {
				So(restored.Len(), ShouldEqual, 0)
				_, ok := restored.Get("a")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When restoring more entries than capacity", func() {
			big := cache.New[string](cache.WithClock[string](clock.now))
			for i := 0; i < 30; i++ {
				big.Set(fmt.Sprintf("k%02d", i), "v")
				clock.advance(time.Second)
			}
			// Default capacity is 20; Set already evicted down to it, so
			// build an oversized snapshot by restoring into a smaller cache.
			raw, err := big.SnapshotJSON()
			So(err, ShouldBeNil)

			small := cache.New[string](
				cache.WithCapacity[string](5),
				cache.WithClock[string](clock.now),
			)
			small.RestoreJSON(raw)

			Convey("Then the restore trims oldest-first down to capacity", func() {
				So(small.Len(), ShouldEqual, 5)
				_, ok := small.Get("k29")
				So(ok, ShouldBeTrue)
			})
		})
	})
}
