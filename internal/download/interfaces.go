package download

// Transferer defines the interface for the fire-and-forget transfer service.
// Callers get no synchronous result and never observe completion or failure.
type Transferer interface {
	StartTransfer(url string)
	SetUpdateCallback(func(*Transfer))
	SetSaveDirectory(dir string)
	GetTransfer(id string) (*Transfer, bool)
	GetAllTransfers() []*Transfer
}
