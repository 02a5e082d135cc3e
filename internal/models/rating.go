package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rating is a user testimonial, read-only for this API.
type Rating struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Rating float64            `bson:"rating" json:"rating"`
	Review string             `bson:"review,omitempty" json:"review,omitempty"`
}

// Recommendation is a curated item shown in the home-page slider.
type Recommendation struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Image   string             `bson:"image" json:"image"`
	Details string             `bson:"details,omitempty" json:"details,omitempty"`
}
