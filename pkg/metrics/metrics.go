package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса.
// Все методы безопасны для nil получателя - при выключенных метриках
// вызывающий код может передавать nil.
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	QuotesTotal             *prometheus.CounterVec
	BookingSubmissionsTotal *prometheus.CounterVec
	CacheRequestsTotal      *prometheus.CounterVec
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamBreakerState    *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в reg
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established database connections",
		}, []string{"service"}),

		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections in use",
		}, []string{"service"}),

		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_quotes_total",
			Help: "Quotes computed, by availability verdict",
		}, []string{"service", "available"}),

		BookingSubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_submissions_total",
			Help: "Booking submissions, by result",
		}, []string{"service", "result"}),

		CacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "property_cache_requests_total",
			Help: "Property cache lookups, by result",
		}, []string{"service", "result"}),

		UpstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Requests to the StayFinder API, by operation and outcome",
		}, []string{"service", "operation", "outcome"}),

		UpstreamBreakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "upstream_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		}, []string{"service", "breaker"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.QuotesTotal,
		m.BookingSubmissionsTotal,
		m.CacheRequestsTotal,
		m.UpstreamRequestsTotal,
		m.UpstreamBreakerState,
	)

	return m
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}

// RecordQuote учитывает рассчитанную стоимость проживания
func (m *Metrics) RecordQuote(available bool) {
	if m == nil {
		return
	}
	m.QuotesTotal.WithLabelValues(m.serviceName, strconv.FormatBool(available)).Inc()
}

// RecordBookingSubmission учитывает попытку создания бронирования
func (m *Metrics) RecordBookingSubmission(result string) {
	if m == nil {
		return
	}
	m.BookingSubmissionsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// RecordCacheResult учитывает обращение к кэшу объектов (hit, miss, error)
func (m *Metrics) RecordCacheResult(result string) {
	if m == nil {
		return
	}
	m.CacheRequestsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// RecordUpstreamRequest учитывает запрос к StayFinder API
func (m *Metrics) RecordUpstreamRequest(operation, outcome string) {
	if m == nil {
		return
	}
	m.UpstreamRequestsTotal.WithLabelValues(m.serviceName, operation, outcome).Inc()
}

// SetBreakerState обновляет состояние circuit breaker (0 closed, 1 half-open, 2 open)
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.UpstreamBreakerState.WithLabelValues(m.serviceName, name).Set(float64(state))
}
