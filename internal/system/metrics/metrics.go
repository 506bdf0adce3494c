/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package metrics exposes the prometheus instrumentation of the flow engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CollectorInterface defines the metrics recorded while executing flows.
type CollectorInterface interface {
	ObserveNode(nodeType, result string, elapsed time.Duration)
	ObserveFlow(status string)
}

// Collector records node and flow metrics into its own registry.
type Collector struct {
	registry     *prometheus.Registry
	nodeResults  *prometheus.CounterVec
	nodeDuration *prometheus.HistogramVec
	flowResults  *prometheus.CounterVec
}

// NewCollector creates a Collector with a dedicated prometheus registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		nodeResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authtree_node_results_total",
				Help: "Total number of node invocations by node type and result",
			},
			[]string{"node_type", "result"},
		),
		nodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "authtree_node_duration_seconds",
				Help:    "Duration of node invocations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"node_type"},
		),
		flowResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authtree_flow_results_total",
				Help: "Total number of flow steps by resulting status",
			},
			[]string{"status"},
		),
	}
	c.registry.MustRegister(c.nodeResults, c.nodeDuration, c.flowResults)
	return c
}

// ObserveNode records one node invocation.
func (c *Collector) ObserveNode(nodeType, result string, elapsed time.Duration) {
	c.nodeResults.WithLabelValues(nodeType, result).Inc()
	c.nodeDuration.WithLabelValues(nodeType).Observe(elapsed.Seconds())
}

// ObserveFlow records the status a flow step ended with.
func (c *Collector) ObserveFlow(status string) {
	c.flowResults.WithLabelValues(status).Inc()
}

// Handler returns the HTTP handler serving the collected metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// NoopCollector discards every observation.
type NoopCollector struct{}

// ObserveNode does nothing.
func (NoopCollector) ObserveNode(string, string, time.Duration) {}

// ObserveFlow does nothing.
func (NoopCollector) ObserveFlow(string) {}
