package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Reservation is a pending booking owned by the user identified by Email. It is
// removed either directly or when a payment covering it completes.
type Reservation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	TestID       string             `bson:"testId" json:"testId"`
	TestName     string             `bson:"testName" json:"testName"`
	Date         string             `bson:"date" json:"date"`
	Price        float64            `bson:"price" json:"price"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	ReportStatus string             `bson:"reportStatus,omitempty" json:"reportStatus,omitempty"`
}
