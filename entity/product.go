package entity

// Product is a single catalog record. The catalog is loaded once at start
// and treated as read-only for the lifetime of the process.
type Product struct {
	Id               string   `json:"id" bson:"id" validate:"required"`
	Name             string   `json:"name" bson:"name" validate:"required"`
	ActiveIngredient string   `json:"active_ingredient" bson:"active_ingredient" validate:"required"`
	Dosage           string   `json:"dosage" bson:"dosage" validate:"required"`
	Uses             string   `json:"uses" bson:"uses" validate:"required"`
	Symptoms         []string `json:"symptoms" bson:"symptoms" validate:"required,min=1,dive,required"`
	Price            int      `json:"price" bson:"price" validate:"required,gt=0"`
	Manufacturer     string   `json:"manufacturer" bson:"manufacturer" validate:"required"`
	SideEffects      []string `json:"side_effects" bson:"side_effects" validate:"required,min=1,dive,required"`
	Instructions     string   `json:"instructions" bson:"instructions" validate:"required"`
}

// ProductInfo is the summary view returned by the products-info endpoint.
type ProductInfo struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func (p Product) Info() ProductInfo {
	return ProductInfo{
		Id:    p.Id,
		Name:  p.Name,
		Price: p.Price,
	}
}
