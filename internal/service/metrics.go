package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chapter_storage_uploads_total",
			Help: "Object uploads by bucket and result.",
		},
		[]string{"bucket", "result"},
	)

	deletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chapter_storage_deletes_total",
			Help: "Delete gateway calls by bucket and outcome.",
		},
		[]string{"bucket", "outcome"},
	)

	seedTablesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chapter_seed_tables_total",
			Help: "Seed runner table results by table and status.",
		},
		[]string{"table", "status"},
	)

	contactMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chapter_contact_messages_total",
			Help: "Contact form submissions by result.",
		},
		[]string{"result"},
	)
)
