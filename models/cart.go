package models

// CartLineItem is one product in a cart. Name, Price and Image are copied
// from the product when it is added and are not re-synced afterwards.
type CartLineItem struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}
