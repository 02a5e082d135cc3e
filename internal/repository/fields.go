package repository

import "go.mongodb.org/mongo-driver/bson"

// Entity kinds with a whitelisted update endpoint.
const (
	KindUser = "user"
	KindTest = "test"
)

// updatableFields is the single source of truth for which fields each update
// endpoint accepts. Anything else the caller sends is silently dropped.
var updatableFields = map[string][]string{
	KindUser: {"name", "bloodGroup", "district", "upazila", "image"},
	KindTest: {"name", "category", "price", "details", "slots", "image", "date"},
}

// AllowedUpdate filters a raw request body down to the whitelisted fields for
// the given entity kind. Fields absent from the body are left untouched, so an
// omitted field preserves its stored value.
func AllowedUpdate(kind string, raw map[string]interface{}) bson.M {
	update := bson.M{}
	for _, field := range updatableFields[kind] {
		if value, ok := raw[field]; ok {
			update[field] = value
		}
	}
	return update
}
