package history

// Entry is a ledger row enriched for display.
type Entry struct {
	*StatusChange
	FromLabel    string
	ToLabel      string
	OperatorName string
}

// NewEntry labels a change. An empty operator name falls back to SystemOperator.
func NewEntry(change *StatusChange, operatorName string) Entry {
	if change.IsSystem() || operatorName == "" {
		operatorName = SystemOperator
	}
	return Entry{
		StatusChange: change,
		FromLabel:    change.From().Label(),
		ToLabel:      change.To().Label(),
		OperatorName: operatorName,
	}
}
