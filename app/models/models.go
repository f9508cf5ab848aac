package models

// AllModels lists every model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&ProviderAccount{},
		&News{},
		&Comment{},
		&Note{},
	}
}
