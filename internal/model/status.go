package model

// TickStatus represents the outcome of a single refresh tick
type TickStatus string

const (
	// TickOK means the tick fetched and decoded a new frame
	TickOK TickStatus = "OK"

	// TickFetchError means the network retrieval failed
	TickFetchError TickStatus = "FetchError"

	// TickDecodeError means the fetched bytes were not a recognized image
	TickDecodeError TickStatus = "DecodeError"
)

// String returns the string representation of TickStatus
func (ts TickStatus) String() string {
	return string(ts)
}

// IsFailure returns true if the tick did not produce a new frame
func (ts TickStatus) IsFailure() bool {
	return ts == TickFetchError || ts == TickDecodeError
}
