// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SkuStat is the aggregated quantity sold for one SKU in one time window.
// Window bounds are ISO-8601 strings as produced by the stream job.
type SkuStat struct {
	SKU         string `json:"sku"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	TotalQty    int64  `json:"total_qty"`
}

// SkuStatsResponse is the body of GET /stats/sku.
type SkuStatsResponse struct {
	Items []SkuStat `json:"items"`
}

// Health is the body of GET /healthz.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
