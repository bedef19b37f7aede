package domain

// Categories groups products.
var Categories = Schema{
	Name:             "categories",
	IdentifyingField: "name",
	Fields: []Field{
		{Name: "name", Kind: KindString, Required: true, MaxLength: 255},
		{Name: "description", Kind: KindString},
	},
}

// Products are items offered under a category.
var Products = Schema{
	Name:             "products",
	IdentifyingField: "name",
	Fields: []Field{
		{Name: "name", Kind: KindString, Required: true, MaxLength: 255},
		{Name: "description", Kind: KindString},
		{Name: "price", Kind: KindNumber, NonNegative: true},
		{Name: "stock", Kind: KindInteger, NonNegative: true},
		{Name: "available", Kind: KindBool},
		{Name: "category", Kind: KindString},
	},
}

// Schemas returns every registered resource type.
func Schemas() []*Schema {
	return []*Schema{&Categories, &Products}
}
