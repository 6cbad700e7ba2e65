package models

// Category describes a category tile on the landing page. Products refer to
// categories by Name.
type Category struct {
	Id    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}
