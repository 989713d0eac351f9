/*
   Copyright 2024 Arbor Labs

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics defines the prometheus collectors that instrument
// the structural operations of the arbor containers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (

	// TREE

	ArborTreeNodesAddedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arbor_tree_nodes_added_total",
			Help: "The total number of nodes inserted into binary trees.",
		},
	)

	ArborTreeNodesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arbor_tree_nodes_deleted_total",
			Help: "The total number of nodes deleted from binary trees.",
		},
	)

	ArborTreeReplaceTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arbor_tree_replace_total",
			Help: "The total number of element replacements.",
		},
	)

	ArborTreeAttachTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arbor_tree_attach_total",
			Help: "The total number of subtree attach operations.",
		},
	)

	// TRAVERSALS

	ArborTraversalsStartedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arbor_traversals_started_total",
			Help: "The total number of traversal iterators created.",
		},
	)
)

// collectors aggregates every metric exposed by the library.
var collectors = []prometheus.Collector{
	ArborTreeNodesAddedTotal,
	ArborTreeNodesDeletedTotal,
	ArborTreeReplaceTotal,
	ArborTreeAttachTotal,
	ArborTraversalsStartedTotal,
}

// Register adds all arbor collectors to the given registry. A nil
// registry means the prometheus default one.
func Register(r *prometheus.Registry) {
	if r == nil {
		prometheus.MustRegister(collectors...)
		return
	}
	r.MustRegister(collectors...)
}
