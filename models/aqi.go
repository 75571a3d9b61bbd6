package models

import (
	"math/rand/v2"
	"sync"
	"time"
)

// ColorTag is the single display class applied to an AQI value
type ColorTag string

const (
	ColorNone          ColorTag = ""
	ColorGood          ColorTag = "aqi-good"
	ColorModerate      ColorTag = "aqi-moderate"
	ColorSensitive     ColorTag = "aqi-sensitive"
	ColorUnhealthy     ColorTag = "aqi-unhealthy"
	ColorVeryUnhealthy ColorTag = "aqi-very-unhealthy"
	ColorHazardous     ColorTag = "aqi-hazardous"
)

// AllColorTags lists every tier color so a renderer can strip them before applying one
var AllColorTags = []ColorTag{
	ColorGood, ColorModerate, ColorSensitive, ColorUnhealthy, ColorVeryUnhealthy, ColorHazardous,
}

// AQITier is one row of the severity table. Low and High are inclusive.
type AQITier struct {
	Low         int      `json:"low"`
	High        int      `json:"high"`
	Level       string   `json:"level"`
	Description string   `json:"description"`
	Color       ColorTag `json:"color"`
}

// Contains reports whether value falls inside the tier's inclusive range
func (t AQITier) Contains(value int) bool {
	return value >= t.Low && value <= t.High
}

// Status is the "{level} - {description}" line shown under the value
func (t AQITier) Status() string {
	return t.Level + " - " + t.Description
}

// AQITiers is ordered by ascending range; ranges are contiguous over [0, 500]
var AQITiers = []AQITier{
	{Low: 0, High: 50, Level: "Good", Description: "Air quality is satisfactory", Color: ColorGood},
	{Low: 51, High: 100, Level: "Moderate", Description: "Acceptable quality", Color: ColorModerate},
	{Low: 101, High: 150, Level: "Unhealthy for Sensitive Groups", Description: "Mild health effects", Color: ColorSensitive},
	{Low: 151, High: 200, Level: "Unhealthy", Description: "Health effects possible", Color: ColorUnhealthy},
	{Low: 201, High: 300, Level: "Very Unhealthy", Description: "Health alert", Color: ColorVeryUnhealthy},
	{Low: 301, High: 500, Level: "Hazardous", Description: "Emergency conditions", Color: ColorHazardous},
}

// UnknownTier is used for values outside every range
var UnknownTier = AQITier{Low: -1, High: -1, Level: "Unknown", Description: "No data available", Color: ColorNone}

// TierFor returns the first tier whose range contains value, or UnknownTier
func TierFor(value int) AQITier {
	for _, t := range AQITiers {
		if t.Contains(value) {
			return t
		}
	}
	return UnknownTier
}

// MockAQIMax is the exclusive upper bound of a demo draw.
// Draws never reach the Hazardous tier.
const MockAQIMax = 300

// Sampler draws mock AQI values. Safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampler returns a sampler over src. A nil src seeds from the clock.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1|1)
	}
	return &Sampler{rnd: rand.New(src)}
}

// Draw returns a value uniformly distributed over [0, MockAQIMax)
func (s *Sampler) Draw() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(MockAQIMax)
}
