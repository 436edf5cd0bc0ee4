package models

// All returns every persisted model in dependency order.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Food{},
		&Size{},
		&FoodMakeup{},
		&FoodWeight{},
		&Order{},
		&OrderingFood{},
		&SizeForSale{},
	}
}
