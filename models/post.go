// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Post is a single feed item as returned by the posts endpoint
// (GET /api/agents/posts). Optional numeric fields are pointers so that an
// absent value can be told apart from zero.
type Post struct {
	ID        int64  `json:"id"`
	AccountID *int64 `json:"account_id,omitempty"`
	Status    string `json:"status"`
	JobName   string `json:"job_name"`
	Env       string `json:"env"`
	Version   string `json:"version"`

	WhenTS *string `json:"when_ts,omitempty"`

	Goal          string `json:"goal"`
	ResultSummary string `json:"result_summary"`

	LatencyP95Ms *float64 `json:"latency_p95_ms,omitempty"`
	Tokens       *int64   `json:"tokens,omitempty"`
	CostUSD      *float64 `json:"cost_usd,omitempty"`
	Retries      *int64   `json:"retries,omitempty"`

	AnomalySummary  string `json:"anomaly_summary"`
	ErrorSummary    string `json:"error_summary"`
	DataDepsSummary string `json:"data_deps_summary"`
	NextAction      string `json:"next_action"`

	TagsCSV        string `json:"tags_csv"`
	RawPayloadJSON string `json:"raw_payload_json"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
