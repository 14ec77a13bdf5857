package lineup

// Store defines the interface for reading and writing weekly lineup selections.
type Store interface {
	UpsertSelection(selection *Selection) error
	ValidateSelection(userID, weekStart string) error
	GetSelection(userID, weekStart string) (*Selection, error)
	GetValidatedSelections() ([]*Selection, error)
	GetSelectionsForWeek(weekStart string) ([]*Selection, error)
	Clear() error
}
