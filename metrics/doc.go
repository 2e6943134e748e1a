// SPDX-License-Identifier: MIT

// Package metrics exports fuzzy evaluation statistics to Prometheus.
//
// A Collector is a fuzzy.Observer: install it with fuzzy.WithObserver and
// every Output call is counted, labelled by system name.
//
//	reg := prometheus.NewRegistry()
//	col := metrics.NewCollector(reg)
//	sys, _ := fuzzy.New(fuzzy.WithObserver(col))
package metrics
