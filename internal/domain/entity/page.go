package entity

// WaitUntil is the readiness condition a navigation waits for.
type WaitUntil string

const (
	WaitLoad             WaitUntil = "load"
	WaitDOMContentLoaded WaitUntil = "domcontentloaded"
	// WaitNetworkIdle resolves once no more than two requests are in flight.
	WaitNetworkIdle WaitUntil = "networkidle"
)

type Viewport struct {
	Width  int
	Height int
}

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
