package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Image struct {
	ImageURL  string `bson:"image_url" json:"imageUrl"`
	ImageHint string `bson:"image_hint,omitempty" json:"imageHint,omitempty"`
}

type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

type Temple struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Image       *Image             `bson:"image,omitempty" json:"image,omitempty"`
	Poojas      []Pooja            `bson:"poojas,omitempty" json:"poojas,omitempty"`
	Lat         *float64           `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng         *float64           `bson:"lng,omitempty" json:"lng,omitempty"`
	Contact     *Contact           `bson:"contact,omitempty" json:"contact,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"created_by,omitempty" json:"createdBy,omitempty"`
}

type Pooja struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       int                `bson:"price" json:"price"`
	Image       *Image             `bson:"image,omitempty" json:"image,omitempty"`
	Tags        []string           `bson:"tags" json:"tags"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       int                `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Image       *Image             `bson:"image,omitempty" json:"image,omitempty"`
	InStock     bool               `bson:"in_stock" json:"inStock"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"userId"`
	Items  []CartItem         `bson:"items" json:"items"`
}
