package entity

// Contact is a landing page form submission.
type Contact struct {
	StorageKey   string    `json:"_id,omitempty" bson:"_id,omitempty"`
	ID           string    `json:"id" bson:"id"`
	Nombre       string    `json:"nombre" bson:"nombre"`
	Email        string    `json:"email" bson:"email"`
	Telefono     string    `json:"telefono" bson:"telefono"`
	TelefonoE164 string    `json:"telefono_e164,omitempty" bson:"telefono_e164,omitempty"`
	Empresa      string    `json:"empresa" bson:"empresa"`
	TipoEmpresa  string    `json:"tipo_empresa" bson:"tipo_empresa"`
	Mensaje      *string   `json:"mensaje" bson:"mensaje"`
	CreatedAt    Timestamp `json:"created_at" bson:"created_at"`
}
