package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`     // "admin" or absent
	Status     string             `bson:"status,omitempty" json:"status,omitempty"` // "active", "block" or absent
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

func (u *User) IsActive() bool {
	return u != nil && u.Status == "active"
}
