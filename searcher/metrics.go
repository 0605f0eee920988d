package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Goroutines   int
	Episodes     int64
	FullPlayouts int64
	Nodes        int64
}

type MetricsCollector interface {
	Start(goroutines int)
	AddEpisode()
	AddFullPlayout()
	AddNode()
	Complete() SearchMetric
}

type metricsCollector struct {
	startTime    time.Time
	goroutines   int
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	nodes        atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Goroutines:   m.goroutines,
		Episodes:     m.episodes.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
		Nodes:        m.nodes.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int)              {}
func (m *noMetricsCollector) AddEpisode()            {}
func (m *noMetricsCollector) AddFullPlayout()        {}
func (m *noMetricsCollector) AddNode()               {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
