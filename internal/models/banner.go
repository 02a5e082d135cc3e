package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Banner is a promotional banner. IsActive is stored as the strings "true" and
// "false" to match the documents the frontend writes; at most one banner is
// active at a time, enforced by the activation flow rather than the database.
type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	IsActive    string             `bson:"isActive" json:"isActive"`
	Coupon      string             `bson:"coupon,omitempty" json:"coupon,omitempty"`
	Rate        float64            `bson:"rate,omitempty" json:"rate,omitempty"`
}
