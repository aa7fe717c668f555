// Package seed builds the built-in initial snapshot used when no persisted
// state exists. The dataset is fixed so fresh sessions are reproducible.
package seed

import (
	"time"

	"github.com/ecatuogno1/glassvision/internal/domain"
)

// CollectionSeeds are the curated collection groupings assigned to palette
// entries in rotation.
var CollectionSeeds = [][]string{
	{"Studio Library", "Solar Control"},
	{"Heritage Capsule"},
	{"Immersive Retail"},
	{"Transit Experiences"},
	{"Executive Suites"},
	{"Materials Lab"},
	{"Sustainable Core"},
	{"Hospitality Highlights"},
}

// NoteSeeds rotate through palette entries as workflow notes.
var NoteSeeds = []string{
	"Verified spectral data for documentation.",
	"Awaiting final photography from studio session.",
	"Client feedback integrated into description.",
	"Color match confirmed with fabrication team.",
	"Pending installation case study approval.",
	"Ready for immersive visualization showcase.",
}

var statusSeeds = []domain.GlassStatus{
	domain.GlassPublished,
	domain.GlassDraft,
	domain.GlassPublished,
	domain.GlassDraft,
	domain.GlassArchived,
	domain.GlassPublished,
}

// FallbackCollection is the deterministic collection assigned when a saved
// record ends up with no collections.
func FallbackCollection() string {
	return CollectionSeeds[0][0]
}

// FallbackNote is the deterministic note assigned when a saved record has a
// blank notes field.
func FallbackNote() string {
	return NoteSeeds[0]
}

type paletteColor struct {
	id              string
	name            string
	hueGroup        string
	hex             string
	transmission    domain.LightTransmission
	reflectance     int
	dominantElement string
	category        domain.GlassCategory
	description     string
	applications    []string
	tags            []string
}

var palette = []paletteColor{
	{
		id: "aqua-frost", name: "Aqua Frost", hueGroup: "Blue-Green", hex: "#8FD1D2",
		transmission: domain.TransmissionHigh, reflectance: 9, dominantElement: "Copper",
		category:     domain.CategoryArchitectural,
		description:  "A bright aqua glass with high clarity that gently diffuses light while preserving color fidelity.",
		applications: []string{"Skylights", "Atrium facades", "Retail partitions"},
		tags:         []string{"cool", "modern", "daylighting"},
	},
	{
		id: "amber-veil", name: "Amber Veil", hueGroup: "Amber", hex: "#D7964B",
		transmission: domain.TransmissionMedium, reflectance: 14, dominantElement: "Iron Oxide",
		category:     domain.CategoryArchitectural,
		description:  "Warm amber glass with subtle reflective qualities that enhances interior warmth and bronze tones.",
		applications: []string{"Hospitality lobbies", "Curtain walls", "Residential glazing"},
		tags:         []string{"warm", "sunset", "bronze"},
	},
	{
		id: "cobalt-ice", name: "Cobalt Ice", hueGroup: "Blue", hex: "#1F4DA0",
		transmission: domain.TransmissionLow, reflectance: 22, dominantElement: "Cobalt Oxide",
		category:     domain.CategoryArt,
		description:  "Deep cobalt blue glass ideal for creating dramatic focal points and privacy partitions.",
		applications: []string{"Feature walls", "Public art installations", "Back-painted panels"},
		tags:         []string{"bold", "saturated", "statement"},
	},
	{
		id: "smoke-haze", name: "Smoke Haze", hueGroup: "Gray", hex: "#7E868C",
		transmission: domain.TransmissionMedium, reflectance: 15, dominantElement: "Nickel Oxide",
		category:     domain.CategoryAutomotive,
		description:  "Neutral gray glass that balances glare reduction with balanced daylight transmission.",
		applications: []string{"Automotive glazing", "Corporate facades", "Wayfinding signage"},
		tags:         []string{"neutral", "balanced", "glare-control"},
	},
	{
		id: "forest-laminate", name: "Forest Laminate", hueGroup: "Green", hex: "#3F7153",
		transmission: domain.TransmissionMedium, reflectance: 18, dominantElement: "Chromium Oxide",
		category:     domain.CategoryArchitectural,
		description:  "Laminated green glass that provides solar control and integrates seamlessly with biophilic palettes.",
		applications: []string{"Sunshades", "Outdoor canopies", "Transit stations"},
		tags:         []string{"biophilic", "solar-control", "layered"},
	},
	{
		id: "opal-mist", name: "Opal Mist", hueGroup: "Opalescent", hex: "#ECE4D7",
		transmission: domain.TransmissionHigh, reflectance: 6, dominantElement: "Fluorine",
		category:     domain.CategoryDecorative,
		description:  "Milky opalescent glass that produces a diffused glow, ideal for ambient feature lighting.",
		applications: []string{"Pendant fixtures", "Glass sculptures", "Retail displays"},
		tags:         []string{"diffuse", "soft", "ambient"},
	},
	{
		id: "ruby-flare", name: "Ruby Flare", hueGroup: "Red", hex: "#B0122A",
		transmission: domain.TransmissionLow, reflectance: 25, dominantElement: "Gold Chloride",
		category:     domain.CategoryArt,
		description:  "Premium ruby red glass with intense saturation used for signage, accents, and ceremonial installations.",
		applications: []string{"Feature lighting", "Brand signage", "Lit backdrops"},
		tags:         []string{"luxury", "heritage", "accent"},
	},
	{
		id: "sandstone-sheen", name: "Sandstone Sheen", hueGroup: "Neutral", hex: "#C9B59A",
		transmission: domain.TransmissionHigh, reflectance: 11, dominantElement: "Titanium Oxide",
		category:     domain.CategoryDecorative,
		description:  "Neutral champagne glass suited for interiors seeking subtle warmth with low glare.",
		applications: []string{"Conference rooms", "Retail shelving", "Residential interiors"},
		tags:         []string{"minimal", "warm-neutral", "low-glare"},
	},
	{
		id: "ultraviolet-shield", name: "Ultraviolet Shield", hueGroup: "Purple", hex: "#6C3C8C",
		transmission: domain.TransmissionMedium, reflectance: 19, dominantElement: "Manganese Oxide",
		category:     domain.CategoryLaboratory,
		description:  "Specialized violet glass that filters UV wavelengths, used to protect light-sensitive collections.",
		applications: []string{"Museums", "Scientific storage", "Premium retail displays"},
		tags:         []string{"protective", "filtering", "specialty"},
	},
	{
		id: "pacific-horizon", name: "Pacific Horizon", hueGroup: "Teal", hex: "#3A8F9E",
		transmission: domain.TransmissionHigh, reflectance: 13, dominantElement: "Copper",
		category:     domain.CategoryArchitectural,
		description:  "Balanced teal glass that provides daylighting benefits while complementing coastal palettes.",
		applications: []string{"Airports", "Marine centers", "Educational facilities"},
		tags:         []string{"coastal", "vibrant", "harmonious"},
	},
}

// GlassRecords returns the seeded palette with rotating status, collection,
// and note assignments.
func GlassRecords() []domain.GlassRecord {
	base := time.Date(2024, time.March, 22, 10, 0, 0, 0, time.UTC)
	records := make([]domain.GlassRecord, 0, len(palette))
	for i, color := range palette {
		collections := append([]string(nil), CollectionSeeds[i%len(CollectionSeeds)]...)
		owner := "Materials Lab"
		if i%2 == 1 {
			owner = "Design Ops"
		}
		records = append(records, domain.GlassRecord{
			ID:                color.id,
			Name:              color.name,
			HueGroup:          color.hueGroup,
			Hex:               color.hex,
			LightTransmission: color.transmission,
			Reflectance:       color.reflectance,
			DominantElement:   color.dominantElement,
			Category:          color.category,
			Description:       color.description,
			Applications:      append([]string(nil), color.applications...),
			Tags:              append([]string(nil), color.tags...),
			Status:            statusSeeds[i%len(statusSeeds)],
			Featured:          i%3 == 0,
			Collections:       collections,
			UpdatedAt:         base.AddDate(0, 0, -i),
			Owner:             owner,
			Notes:             NoteSeeds[i%len(NoteSeeds)],
		})
	}
	return records
}
