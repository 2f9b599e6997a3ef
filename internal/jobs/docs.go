// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SuspensionReconciliationJob - Periodically scans for suspension markers
// that outlived their confirmation budget. Resume-then-clear on the confirm
// path is deliberately non-transactional, so a crash between the two writes
// leaves a consumed marker behind; this job makes those visible.
package jobs
