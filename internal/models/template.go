package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template represents a manufacturer maintenance template with its rule items.
// Templates are shared reference data; no vehicle owns them.
type Template struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Make  string             `bson:"make" json:"make"`
	Model string             `bson:"model" json:"model"`
	Items []TemplateRule     `bson:"items" json:"items"`
}

// TemplateRule is one maintenance rule inside a template. IntervalKm of 0
// means the rule has no distance interval (serviced by time or inspection,
// see the Note field).
type TemplateRule struct {
	ID         string `bson:"id" json:"id"`
	PartName   string `bson:"part_name" json:"part_name"`
	IntervalKm int    `bson:"interval_km,omitempty" json:"interval_km,omitempty"`
	Note       string `bson:"note,omitempty" json:"note,omitempty"`
}
