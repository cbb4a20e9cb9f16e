package components

// Material decides the collision response for a deformable body.
type Material int

const (
	// MaterialElastic deforms through the spring network and recovers.
	MaterialElastic Material = iota
	// MaterialBrittle breaks (terminal) when it impacts above its break speed.
	MaterialBrittle
	// MaterialTin deforms plastically: impacts leave permanent dents.
	MaterialTin
)

func (m Material) String() string {
	switch m {
	case MaterialBrittle:
		return "brittle"
	case MaterialTin:
		return "tin"
	default:
		return "elastic"
	}
}

// ParseMaterial maps a tuning-file tag to a Material. Unknown tags fall back
// to elastic.
func ParseMaterial(tag string) Material {
	switch tag {
	case "brittle":
		return MaterialBrittle
	case "tin":
		return MaterialTin
	default:
		return MaterialElastic
	}
}
