package main

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Session states
type sessionState int

const (
	periodView sessionState = iota
	customRange
	configView
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case periodView:
		return "period"
	case customRange:
		return "custom range"
	case configView:
		return "configuration"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}
