package entity

// Logo is a partner logo shown in the landing page slider. ImagenBase64 is
// stored exactly as received.
type Logo struct {
	StorageKey   string    `json:"_id,omitempty" bson:"_id,omitempty"`
	ID           string    `json:"id" bson:"id"`
	Nombre       string    `json:"nombre" bson:"nombre"`
	ImagenBase64 string    `json:"imagen_base64" bson:"imagen_base64"`
	CreatedAt    Timestamp `json:"created_at" bson:"created_at"`
}
