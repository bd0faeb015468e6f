package main

const (
	logMsgMigrated        = "schema migrated"
	logMsgServing         = "serving library administration service"
	logMsgShuttingDown    = "shutting down"
	logMsgStopped         = "server stopped"
	logMsgObservability   = "observability enabled"
	logMsgProviderFailure = "observability shutdown failed"
	logMsgStaffCreated    = "staff account created"

	logAttrDriver   = "driver"
	logAttrAddress  = "address"
	logAttrWorkers  = "workers"
	logAttrVersion  = "version"
	logAttrUsername = "username"
	logAttrUserID   = "user_id"
	logAttrError    = "error"
	logAttrTraces   = "trace_endpoint"
	logAttrMetrics  = "metrics_endpoint"
	logAttrLogs     = "logs_endpoint"
)
