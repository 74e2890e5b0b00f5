package entities

// Point is a raw (latitude, longitude) pair in degrees. JSON form is [lat,lng].
type Point [2]float64

func (p Point) Lat() float64 { return p[0] }
func (p Point) Lng() float64 { return p[1] }

// Boundary is a closed polygon; the last vertex connects back to the first
// without being repeated.
type Boundary []Point

type FarmType string

const (
	FarmVineyard   FarmType = "Vineyard"
	FarmOrchard    FarmType = "Orchard"
	FarmLavender   FarmType = "Lavender Farm"
	FarmFieldCrops FarmType = "Field Crops"
)

// FarmTypes is the display order used by the create form.
var FarmTypes = []FarmType{FarmVineyard, FarmOrchard, FarmLavender, FarmFieldCrops}

func (t FarmType) Valid() bool {
	for _, v := range FarmTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Farm struct {
	Name     string   `json:"name" validate:"required"`
	Type     FarmType `json:"type" validate:"farmtype"`
	Boundary Boundary `json:"boundary,omitempty"`
	Center   *Point   `json:"center,omitempty"`
}

// SavedFarms keeps insertion order; Name is the unique key.
type SavedFarms []Farm

func (s SavedFarms) FindByName(name string) (Farm, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Farm{}, false
}

// Upsert replaces the farm with the same name in place, or appends it.
// The stored record is replaced whole, never merged.
func (s *SavedFarms) Upsert(f Farm) (replaced bool) {
	for i := range *s {
		if (*s)[i].Name == f.Name {
			(*s)[i] = f
			return true
		}
	}
	*s = append(*s, f)
	return false
}
