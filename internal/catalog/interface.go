package catalog

// Store defines the interface for interacting with the player catalog.
type Store interface {
	UpsertPlayers(players []Player) error
	GetAllPlayers() ([]Player, error)
	GetPlayerByNormalizedName(normalizedName string) (*Player, error)
	AddPlaceholder(name, normalizedName string) (Player, error)
	Clear() error
}
