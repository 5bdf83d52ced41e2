package routing

// QueryStatistics collects per-query counters for diagnostics. Reset on
// every Preallocate.
type QueryStatistics struct {
	framesPushed    int
	framesPopped    int
	backtracks      int
	departuresTried int
}

func (qs *QueryStatistics) GetFramesPushed() int {
	return qs.framesPushed
}

func (qs *QueryStatistics) GetFramesPopped() int {
	return qs.framesPopped
}

func (qs *QueryStatistics) GetBacktracks() int {
	return qs.backtracks
}

func (qs *QueryStatistics) GetDeparturesTried() int {
	return qs.departuresTried
}

func (qs *QueryStatistics) reset() {
	qs.framesPushed = 0
	qs.framesPopped = 0
	qs.backtracks = 0
	qs.departuresTried = 0
}
