package nexon

// Ocid is the account-agnostic character identifier every game resource
// resolves before fetching character data.
type Ocid struct {
	Ocid string `json:"ocid"`
}

// OcidSchema describes the ocid lookup payload.
var OcidSchema = &ModelSchema{
	Name: "Ocid",
	Fields: []Field{
		{Name: "ocid", Required: true, Shape: String()},
	},
}

// OcidShape is the shape for ocid lookup responses.
var OcidShape = Model(OcidSchema)
