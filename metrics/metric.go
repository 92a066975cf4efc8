package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnb-chain/ledger-pruner/logging"
)

var (
	SoftPrunedBatchGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_soft_pruned_batch",
		Help: "Last soft pruned batch number, data at or below it is about to be removed.",
	})

	SoftPrunedSubBlockGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_soft_pruned_sub_block",
		Help: "Last soft pruned sub-block number.",
	})

	HardPrunedBatchGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_hard_pruned_batch",
		Help: "Last hard pruned batch number, data at or below it is removed.",
	})

	HardPrunedSubBlockGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_hard_pruned_sub_block",
		Help: "Last hard pruned sub-block number.",
	})

	PrunedRowsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pruned_rows_total",
		Help: "Rows removed or scrubbed by hard pruning, by table.",
	}, []string{"table"})

	HardPruneDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hard_prune_duration_seconds",
		Help:    "Duration of a hard prune call, including commit.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	})

	PruneErrorsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prune_errors_total",
		Help: "Failed prune calls, by kind of call.",
	}, []string{"type"})

	MetricsItems = []prometheus.Collector{
		SoftPrunedBatchGauge,
		SoftPrunedSubBlockGauge,
		HardPrunedBatchGauge,
		HardPrunedSubBlockGauge,
		PrunedRowsCounter,
		HardPruneDuration,
		PruneErrorsCounter,
	}
)

const DefaultMetricsAddress = "0.0.0.0:9090"

type Metrics struct {
	httpAddress string
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewMetrics(address string) *Metrics {
	if address == "" {
		address = DefaultMetricsAddress
	}
	return &Metrics{
		httpAddress: address,
		registry:    prometheus.NewRegistry(),
	}
}

func (m *Metrics) Start() {
	m.registry.MustRegister(MetricsItems...)
	go m.serve()
}

func (m *Metrics) serve() {
	router := mux.NewRouter()
	router.Path("/metrics").Handler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.httpServer = &http.Server{
		Addr:    m.httpAddress,
		Handler: router,
	}
	if err := m.httpServer.ListenAndServe(); err != nil {
		logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
		panic(err)
	}
}
