package models

type Product struct {
	Id          string  `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Image       string  `bson:"image" json:"image"`
	Category    string  `bson:"category" json:"category"`
	Slug        string  `bson:"slug" json:"slug"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	IsFeatured  bool    `bson:"isFeatured" json:"-"`
}
