package main

// Log messages
const (
	LogMsgStarting        = "Starting TextMaple"
	LogMsgStopped         = "TextMaple stopped"
	LogMsgConfigWarning   = "Configuration warning"
	LogMsgSaveUnreadable  = "Save slot could not be loaded, starting a new game"
	LogMsgFinalSaveFailed = "Final save failed"
	LogMsgMetricsFailed   = "Metrics endpoint failed, continuing without it"
)
