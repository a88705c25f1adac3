package o11y

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"upside-down-research.com/oss/swapsearch/internal/config"
	"upside-down-research.com/oss/swapsearch/internal/search"
)

// Recorder publishes solve statistics to the configured sinks: a
// Prometheus Pushgateway for scrapeable gauges and InfluxDB for per-solve
// telemetry points. A nil Recorder, or one with both sinks disabled, is a
// no-op.
type Recorder struct {
	metrics   config.MetricsConfig
	telemetry config.TelemetryConfig

	pusher     *push.Pusher
	solveCount *prometheus.CounterVec
	solveStats *prometheus.GaugeVec
}

// NewRecorder builds a Recorder from config. Disabled sinks stay nil.
func NewRecorder(metrics config.MetricsConfig, telemetry config.TelemetryConfig) *Recorder {
	r := &Recorder{metrics: metrics, telemetry: telemetry}

	if metrics.Enabled {
		job := metrics.JobName
		if job == "" {
			job = "swapsearch"
		}
		r.pusher = push.New(metrics.PushgatewayURL, job)
		r.solveCount = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swapsearch_solves_total",
				Help: "Completed solve calls",
			},
			[]string{"strategy", "solved"})
		r.solveStats = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "swapsearch_solve_stat",
				Help: "Statistics of the most recent solve",
			},
			[]string{"strategy", "stat"})
		r.pusher.Collector(r.solveCount)
		r.pusher.Collector(r.solveStats)
	}

	return r
}

// RecordSolve publishes the outcome of one solve call.
func (r *Recorder) RecordSolve(runID, strategy string, res *search.Result, duration time.Duration) {
	if r == nil {
		return
	}

	if r.pusher != nil {
		r.solveCount.WithLabelValues(strategy, strconv.FormatBool(res.Solved())).Inc()
		set := func(stat string, v float64) {
			r.solveStats.WithLabelValues(strategy, stat).Set(v)
		}
		set("expanded", float64(res.Stats.Expanded))
		set("generated", float64(res.Stats.Generated))
		set("obsolete_dropped", float64(res.Stats.ObsoleteDropped))
		set("max_fringe", float64(res.Stats.MaxFringe))
		set("cost", float64(res.Cost))
		set("duration_ms", float64(duration.Milliseconds()))

		// launch a goroutine to do the pushing
		go func() {
			if err := r.pusher.Push(); err != nil {
				log.Error("Error pushing data to Pushgateway", "error", err)
			}
		}()
	}

	if r.telemetry.Enabled {
		r.record("solve", map[string]string{
			"run_id":   runID,
			"strategy": strategy,
			"solved":   strconv.FormatBool(res.Solved()),
		}, map[string]interface{}{
			"cost":             res.Cost,
			"expanded":         res.Stats.Expanded,
			"generated":        res.Stats.Generated,
			"obsolete_dropped": res.Stats.ObsoleteDropped,
			"max_fringe":       res.Stats.MaxFringe,
			"duration_ms":      duration.Milliseconds(),
		})
	}
}

func (r *Recorder) record(name string, tags map[string]string, fields map[string]interface{}) {
	client := influxdb2.NewClient(r.telemetry.URL, r.telemetry.Token)
	defer client.Close()
	writeAPI := client.WriteAPIBlocking(r.telemetry.Org, r.telemetry.Bucket)
	point := write.NewPoint(name, tags, fields, time.Now())
	if err := writeAPI.WritePoint(context.Background(), point); err != nil {
		log.Error("Error writing telemetry point", "error", err)
	}
}
