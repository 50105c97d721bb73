/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package operationalMetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestGetDocumentation(t *testing.T) {
	counter := NewCounter(prometheus.CounterOpts{
		Name: "doc_render_ops_total",
		Help: "Number of documentation render operations",
	})
	gauge := NewGaugeVec(prometheus.GaugeOpts{
		Name: "doc_render_items",
		Help: "Number of items in the last rendered documentation",
	}, []string{"kind"})
	counter.Inc()
	gauge.WithLabelValues("metric").Set(1)

	doc := GetDocumentation()
	require.Contains(t, doc, "### doc_render_ops_total")
	require.Contains(t, doc, "Number of documentation render operations")
	require.Contains(t, doc, "| **Type** | counter |")
	require.Contains(t, doc, "### doc_render_items")
	require.Contains(t, doc, "| **Type** | gauge |")
}
