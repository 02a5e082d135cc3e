package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Test is a bookable diagnostic test. Slots is the remaining capacity and is
// decremented by the booking flow with no floor check.
type Test struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Details  string             `bson:"details" json:"details"`
	Slots    int                `bson:"slots" json:"slots"`
	Image    string             `bson:"image" json:"image"`
	Date     string             `bson:"date" json:"date"` // "2006-01-02", compared lexically
}
