package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/podium/internal/adapters/report"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/sampledata"
	"github.com/okian/podium/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

var podiumEnv = []string{
	"PODIUM_RAW_DIR", "PODIUM_CLEAN_DIR", "PODIUM_CHART_DIR", "PODIUM_REPORT_DIR",
	"PODIUM_BOUNDARIES_PATH", "PODIUM_METRICS_PATH", "PODIUM_SPLINE_SAMPLES", "PODIUM_LOCAL_JOIN",
}

func setTestEnv(root string) {
	raw := filepath.Join(root, "raw")
	_ = os.Setenv("PODIUM_RAW_DIR", raw)
	_ = os.Setenv("PODIUM_CLEAN_DIR", filepath.Join(root, "refined"))
	_ = os.Setenv("PODIUM_CHART_DIR", filepath.Join(root, "charts"))
	_ = os.Setenv("PODIUM_REPORT_DIR", filepath.Join(root, "reports"))
	_ = os.Setenv("PODIUM_BOUNDARIES_PATH", filepath.Join(raw, sampledata.FileBoundaries))
	_ = os.Setenv("PODIUM_METRICS_PATH", filepath.Join(root, "podium.prom"))
	_ = os.Setenv("PODIUM_SPLINE_SAMPLES", "40")
}

func clearTestEnv() {
	for _, k := range podiumEnv {
		_ = os.Unsetenv(k)
	}
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	convey.Convey("Given a working directory configured through the environment", t, func() {
		root := t.TempDir()
		setTestEnv(root)
		defer clearTestEnv()

		convey.Convey("When the sample is written and the default command runs", func() {
			out, err := execute("sample")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "PODIUM_BOUNDARIES_PATH")

			out, err = execute()

			convey.Convey("Then the whole pipeline completes", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "MEDALS")
				_, err := os.Stat(filepath.Join(root, "reports", report.FileViewsJSON))
				convey.So(err, convey.ShouldBeNil)
				_, err = os.Stat(filepath.Join(root, "charts", types.ViewYoungestWinterGold+".html"))
				convey.So(err, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the stages run one by one", func() {
			_, err := execute("sample")
			convey.So(err, convey.ShouldBeNil)
			_, err = execute("profile")
			convey.So(err, convey.ShouldBeNil)
			_, err = execute("clean")
			convey.So(err, convey.ShouldBeNil)
			_, err = execute("charts", "--log-level", "debug")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the served API exposes the views", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				srv := httptest.NewServer(newHTTPServer(cfg).Handler)
				defer srv.Close()

				resp, err := http.Get(srv.URL + "/api/views/" + types.ViewGoldByCountry)
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
			})
		})

		convey.Convey("When charts run before clean", func() {
			_, err := execute("sample")
			convey.So(err, convey.ShouldBeNil)
			_, err = execute("charts")

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "charts")
		})

		convey.Convey("When the config is invalid", func() {
			_ = os.Setenv("PODIUM_LOCAL_JOIN", "city")
			_, err := execute("profile")

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(strings.Contains(err.Error(), "local_join"), convey.ShouldBeTrue)
		})

		convey.Convey("When serve is cancelled", func() {
			cfg := config.New()
			cfg.Addr = "127.0.0.1:0"
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			convey.So(serve(ctx, cfg, logger.Nop()), convey.ShouldBeNil)
		})
	})
}
