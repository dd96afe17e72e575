package sampledata_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/podium/internal/adapters/render/geo"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/sampledata"
	"github.com/okian/podium/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestGenerate(t *testing.T) {
	Convey("Given the sample dataset", t, func() {
		d := sampledata.Generate()

		Convey("Then it is deterministic", func() {
			So(sampledata.Generate(), ShouldResemble, d)
		})

		Convey("Then every row has the header's width", func() {
			for _, table := range [][][]string{d.Athletes, d.Hosts, d.Medals, d.Results} {
				for _, row := range table[1:] {
					So(len(row), ShouldEqual, len(table[0]))
				}
			}
		})

		Convey("Then it carries rows the cleaner drops", func() {
			teams := 0
			for _, row := range d.Medals[1:] {
				if row[7] == "" {
					teams++
				}
			}
			So(teams, ShouldEqual, 2)
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given an output directory", t, func() {
		dir := t.TempDir()

		Convey("When the sample is written", func() {
			files, err := sampledata.Write(context.Background(), dir)
			So(err, ShouldBeNil)

			Convey("Then the four source tables load with their required columns", func() {
				store := repository.NewCSVStore(dir)
				for name, cols := range map[string][]string{
					repository.FileAthletes: repository.AthleteColumns,
					repository.FileHosts:    repository.HostColumns,
					repository.FileMedals:   repository.MedalColumns,
					repository.FileResults:  repository.ResultColumns,
				} {
					df, err := store.Read(context.Background(), name)
					So(err, ShouldBeNil)
					So(df.Nrow(), ShouldBeGreaterThan, 0)
					for _, c := range cols {
						So(df.Names(), ShouldContain, c)
					}
				}
			})

			Convey("Then the boundaries load without Atlantis", func() {
				So(files.Boundaries, ShouldEqual, filepath.Join(dir, sampledata.FileBoundaries))
				_, err := os.Stat(files.Boundaries)
				So(err, ShouldBeNil)

				regions, err := geo.LoadBoundaries(files.Boundaries, "ADMIN")
				So(err, ShouldBeNil)
				So(len(regions), ShouldEqual, 7)
				for _, r := range regions {
					So(r.Name, ShouldNotEqual, "Atlantis")
				}
			})
		})
	})
}
