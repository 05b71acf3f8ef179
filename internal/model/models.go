package model

// All returns every table model in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Note{},
	}
}
