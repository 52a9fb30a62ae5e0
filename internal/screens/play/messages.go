package play

// scenarioReadyMsg is sent when scenario generation completes.
type scenarioReadyMsg struct {
	Err error
}
