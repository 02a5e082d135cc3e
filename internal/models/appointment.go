package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ReportPending   = "pending"
	ReportDelivered = "delivered"
)

// Appointment is a paid, scheduled test, created by the payment-completion flow.
// ReservationID lists the hex ids of the reservations the payment covered.
type Appointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	TestName      string             `bson:"testName" json:"testName"`
	Price         float64            `bson:"price" json:"price"`
	Date          string             `bson:"date" json:"date"`
	ReservationID []string           `bson:"reservationId" json:"reservationId"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	ReportStatus  string             `bson:"reportStatus" json:"reportStatus"` // pending -> delivered
}
