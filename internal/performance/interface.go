package performance

// Store defines the interface for the performance record store.
type Store interface {
	UpsertRecords(records []Record) error
	GetRecordsForPlayer(playerName string) ([]Record, error)
	GetAllRecords() ([]Record, error)
	Clear() error
}
