package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/okian/podium/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		ctx := context.Background()

		Convey("When creating a deduper", func() {
			d := dedupe.NewInMemoryDeduper()

			So(d, ShouldNotBeNil)
			So(d.Size(), ShouldEqual, 0)
		})

		Convey("When recording rows", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the row is new", func() {
				seen := d.SeenAndRecord(ctx, []string{"Athletics", "GOLD", "USA"})

				Convey("Then it should return false and record the row", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the same row comes again", func() {
				d.SeenAndRecord(ctx, []string{"Athletics", "GOLD", "USA"})
				seen := d.SeenAndRecord(ctx, []string{"Athletics", "GOLD", "USA"})

				Convey("Then it should return true", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And rows differ only in where cells split", func() {
				d.SeenAndRecord(ctx, []string{"ab", "c"})
				seen := d.SeenAndRecord(ctx, []string{"a", "bc"})

				Convey("Then they are distinct", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 2)
				})
			})
		})

		Convey("When rows are recorded concurrently", func() {
			d := dedupe.NewInMemoryDeduper()
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 100; j++ {
						d.SeenAndRecord(ctx, []string{fmt.Sprint(j)})
					}
				}()
			}
			wg.Wait()

			Convey("Then each distinct row is held once", func() {
				So(d.Size(), ShouldEqual, 100)
			})
		})
	})
}

func TestCountDuplicates(t *testing.T) {
	Convey("Given table rows with repeats", t, func() {
		rows := [][]string{
			{"a", "1"},
			{"b", "2"},
			{"a", "1"},
			{"a", "1"},
			{"b", "3"},
		}

		Convey("Then rows equal to an earlier row are counted", func() {
			So(dedupe.CountDuplicates(context.Background(), rows), ShouldEqual, 2)
			So(dedupe.CountDuplicates(context.Background(), nil), ShouldEqual, 0)
		})

		Convey("Then a repeat far behind the first occurrence is still counted", func() {
			many := make([][]string, 0, 20001)
			for i := 0; i < 20000; i++ {
				many = append(many, []string{fmt.Sprint(i)})
			}
			many = append(many, []string{"0"})

			So(dedupe.CountDuplicates(context.Background(), many), ShouldEqual, 1)
		})
	})
}
