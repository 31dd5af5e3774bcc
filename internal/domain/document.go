package domain

// Document field names with meaning beyond the field table.
const (
	TimestampField = "@timestamp"
	LocationField  = "location"
)

// GeoPoint is a latitude/longitude pair in Elasticsearch geo_point form.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Document is an index-ready user document.
type Document map[string]any

// SetLocation attaches geocoded coordinates to the document.
func (d Document) SetLocation(p GeoPoint) {
	d[LocationField] = p
}
