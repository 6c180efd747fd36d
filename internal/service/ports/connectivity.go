package ports

// Connectivity is an explicit online/offline signal injected into the
// check-in engine, replacing any platform network detection.
type Connectivity interface {
	Online() bool
}
