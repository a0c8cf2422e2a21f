package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is the sole persisted entity: a named subscriber of a channel.
// The wire shape, including the `_id` key, is part of the public API contract.
type Subscriber struct {
	ID                primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	SubscribedChannel string             `json:"subscribedChannel" bson:"subscribedChannel"`
}

// SubscriberName is the projected view returned by GET /subscribers/name.
// It carries no identifier field.
type SubscriberName struct {
	Name              string `json:"name" bson:"name"`
	SubscribedChannel string `json:"subscribedChannel" bson:"subscribedChannel"`
}

// CreateSubscriberRequest is the POST body and the seed record shape.
type CreateSubscriberRequest struct {
	Name              string `json:"name" bson:"name"`
	SubscribedChannel string `json:"subscribedChannel" bson:"subscribedChannel"`
}
