package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecorder(t *testing.T) {
	Convey("Given a new recorder", t, func() {
		r := NewRecorder()

		Convey("When recording successful fetches", func() {
			r.ObserveFetch("AtCoder", 4, 120*time.Millisecond, nil)
			r.ObserveFetch("AtCoder", 2, 80*time.Millisecond, nil)
			r.ObserveFetch("Codeforces", 10, time.Second, nil)

			Convey("Then counts accumulate per host", func() {
				So(testutil.ToFloat64(r.contestsFetched.WithLabelValues("AtCoder")), ShouldEqual, 6)
				So(testutil.ToFloat64(r.contestsFetched.WithLabelValues("Codeforces")), ShouldEqual, 10)
				So(testutil.CollectAndCount(r.fetchDuration), ShouldEqual, 2)
			})
		})

		Convey("When recording a failed fetch", func() {
			r.ObserveFetch("Codeforces", 0, time.Second, errors.New("boom"))

			Convey("Then the error counter moves and no contests are counted", func() {
				So(testutil.ToFloat64(r.fetchErrors.WithLabelValues("Codeforces")), ShouldEqual, 1)
				So(testutil.CollectAndCount(r.contestsFetched), ShouldEqual, 0)
			})
		})

		Convey("When recording selection and delivery", func() {
			r.SetSelected(5)
			r.ObserveDelivery(nil)
			r.ObserveDelivery(errors.New("500"))

			Convey("Then gauge and counters reflect them", func() {
				So(testutil.ToFloat64(r.selected), ShouldEqual, 5)
				So(testutil.ToFloat64(r.deliveries.WithLabelValues(ResultSuccess)), ShouldEqual, 1)
				So(testutil.ToFloat64(r.deliveries.WithLabelValues(ResultFailure)), ShouldEqual, 1)
			})
		})
	})
}

func TestRecorder_Push(t *testing.T) {
	Convey("Given a recorder and a fake Pushgateway", t, func() {
		var gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gotPath = req.URL.Path
			body, _ := io.ReadAll(req.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		r := NewRecorder()
		r.SetSelected(3)

		Convey("When pushing", func() {
			err := r.Push(context.Background(), server.URL)

			Convey("Then the job's metrics are sent", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/metrics/job/"+JobName)
				So(len(gotBody), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the URL is empty", func() {
			Convey("Then pushing is a no-op", func() {
				So(r.Push(context.Background(), ""), ShouldBeNil)
				So(gotPath, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a Pushgateway that rejects pushes", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer server.Close()

		err := NewRecorder().Push(context.Background(), server.URL)

		Convey("Then ErrPushFailed is returned", func() {
			So(errors.Is(err, ErrPushFailed), ShouldBeTrue)
			So(strings.Contains(err.Error(), "500"), ShouldBeTrue)
		})
	})
}
