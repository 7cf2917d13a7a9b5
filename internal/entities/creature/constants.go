package creature

// MonsterType is the creature's element
type MonsterType string

// Monster types
const (
	MonsterTypeFire     MonsterType = "Fire"
	MonsterTypeWater    MonsterType = "Water"
	MonsterTypeGrass    MonsterType = "Grass"
	MonsterTypeElectric MonsterType = "Electric"
	MonsterTypePsychic  MonsterType = "Psychic"
	MonsterTypeFighting MonsterType = "Fighting"
	MonsterTypeDarkness MonsterType = "Darkness"
	MonsterTypeMetal    MonsterType = "Metal"
	MonsterTypeFairy    MonsterType = "Fairy"
	MonsterTypeDragon   MonsterType = "Dragon"
)

// AllMonsterTypes lists every valid type in presentation order
var AllMonsterTypes = []MonsterType{
	MonsterTypeFire,
	MonsterTypeWater,
	MonsterTypeGrass,
	MonsterTypeElectric,
	MonsterTypePsychic,
	MonsterTypeFighting,
	MonsterTypeDarkness,
	MonsterTypeMetal,
	MonsterTypeFairy,
	MonsterTypeDragon,
}

// IsValidMonsterType reports whether t is one of the known types
func IsValidMonsterType(t MonsterType) bool {
	for _, mt := range AllMonsterTypes {
		if t == mt {
			return true
		}
	}
	return false
}

// ColorHarmony controls how the picked colors are applied to the card art
type ColorHarmony string

// Color harmony modes
const (
	HarmonyHarmonize ColorHarmony = "Harmonize"
	HarmonyContrast  ColorHarmony = "Contrast"
	HarmonySurprise  ColorHarmony = "Surprise Me"
)

// AllColorHarmonies lists every valid harmony mode
var AllColorHarmonies = []ColorHarmony{
	HarmonyHarmonize,
	HarmonyContrast,
	HarmonySurprise,
}

// IsValidColorHarmony reports whether h is one of the known modes
func IsValidColorHarmony(h ColorHarmony) bool {
	for _, ch := range AllColorHarmonies {
		if h == ch {
			return true
		}
	}
	return false
}

// Color selection limits
const (
	MinSelectedColors = 2
	MaxSelectedColors = 3
)

// Color is a named palette entry with its hex value
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ColorCatalog is the palette the wizard offers, in presentation order
var ColorCatalog = []Color{
	{Name: "Red", Hex: "#EF4444"},
	{Name: "Orange", Hex: "#F97316"},
	{Name: "Yellow", Hex: "#EAB308"},
	{Name: "Lime", Hex: "#84CC16"},
	{Name: "Green", Hex: "#22C55E"},
	{Name: "Teal", Hex: "#14B8A6"},
	{Name: "Cyan", Hex: "#06B6D4"},
	{Name: "Blue", Hex: "#3B82F6"},
	{Name: "Indigo", Hex: "#6366F1"},
	{Name: "Violet", Hex: "#8B5CF6"},
	{Name: "Purple", Hex: "#A855F7"},
	{Name: "Fuchsia", Hex: "#D946EF"},
	{Name: "Pink", Hex: "#EC4899"},
	{Name: "Rose", Hex: "#F43F5E"},
	{Name: "Brown", Hex: "#78350F"},
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Grey", Hex: "#6B7280"},
}

// IsValidColor reports whether name is in the catalog
func IsValidColor(name string) bool {
	for _, c := range ColorCatalog {
		if c.Name == name {
			return true
		}
	}
	return false
}
