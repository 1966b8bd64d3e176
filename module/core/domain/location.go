package domain

// LocationReport is the wire shape of a location registration, shared by
// the HTTP endpoint and the MQTT ingest path. Field names follow the
// device firmware contract.
type LocationReport struct {
	CamionID string  `json:"camionId"`
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
	Nombre   string  `json:"nombre"`
}

// StoredLocationRecord is the document written to the primary store, keyed
// by camion id. The timestamp field is assigned by the store on write and
// is therefore not part of this struct.
type StoredLocationRecord struct {
	Latitud  float64 `bson:"fltLatitud"`
	Longitud float64 `bson:"fltLongitud"`
	Nombre   string  `bson:"vchNombre"`
}

// LocationRegistered is the event published after a successful primary
// write.
type LocationRegistered struct {
	CamionID  string  `json:"camionId"`
	Latitud   float64 `json:"latitud"`
	Longitud  float64 `json:"longitud"`
	Timestamp int64   `json:"timestamp"`
}
