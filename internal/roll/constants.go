package roll

// Log message constants
const (
	LogMsgSessionOpened    = "Roll session opened"
	LogMsgDefensiveSession = "Roll line without a matching session, opening one defensively"
	LogMsgWinnerRecorded   = "Roll session winner recorded"
	LogMsgWinnerUnmatched  = "Obtainer did not match any recorded roller"
	LogMsgSessionsCleared  = "Roll sessions cleared"
)
