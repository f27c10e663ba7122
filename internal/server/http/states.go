package http

// connState is a stage of the connection's lifecycle. A connection always moves forward:
// a malformed request line makes it jump straight to writingResponse, everything else
// walks through all the states.
type connState uint8

const (
	stateAccepted connState = iota
	stateParsingRequestLine
	stateParsingHeaders
	stateDispatching
	stateWritingResponse
	stateClosed
)

func (c connState) String() string {
	switch c {
	case stateAccepted:
		return "accepted"
	case stateParsingRequestLine:
		return "parsing request line"
	case stateParsingHeaders:
		return "parsing headers"
	case stateDispatching:
		return "dispatching"
	case stateWritingResponse:
		return "writing response"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
