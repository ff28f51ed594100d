// Package components provides the component/pricing lookup service consumed
// by the generator for prompt enrichment. The data source is a static
// catalog; results are best-effort and an empty result never fails a
// pipeline.
package components

import (
	"sort"
	"strings"
)

// Listing is one supplier offer for a component.
type Listing struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier"`
	SKU      string  `json:"sku,omitempty"`
	InStock  bool    `json:"in_stock"`
}

// Result is a component lookup: the recommended offer plus alternatives,
// cheapest first. A zero Result (nil Recommended) means nothing was found.
type Result struct {
	Component    string    `json:"component"`
	Recommended  *Listing  `json:"recommended,omitempty"`
	Alternatives []Listing `json:"alternatives,omitempty"`
}

// CostAnalysis summarizes projected build costs over a set of components.
type CostAnalysis struct {
	TotalEstimated float64 `json:"total_estimated_cost"`
	BudgetBuild    float64 `json:"budget_build_cost"`
	PremiumBuild   float64 `json:"premium_build_cost"`
}

// Catalog answers component lookups from an in-memory table keyed by
// lowercase component name fragments.
type Catalog struct {
	entries map[string][]Listing
}

// NewCatalog returns a catalog seeded with common IoT parts.
func NewCatalog() *Catalog {
	return &Catalog{entries: defaultEntries()}
}

// Lookup finds listings whose catalog key appears in the component name (or
// vice versa), case-insensitively. Missing components produce an empty
// Result, never an error.
func (c *Catalog) Lookup(component string) Result {
	result := Result{Component: component}
	lower := strings.ToLower(component)

	var listings []Listing
	for key, offers := range c.entries {
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			listings = append(listings, offers...)
		}
	}
	if len(listings) == 0 {
		return result
	}

	sort.Slice(listings, func(i, j int) bool { return listings[i].Price < listings[j].Price })

	recommended := pickRecommended(listings)
	result.Recommended = &recommended

	for _, l := range listings {
		if l != recommended && len(result.Alternatives) < 3 {
			result.Alternatives = append(result.Alternatives, l)
		}
	}
	return result
}

// Analyze totals the cheapest and priciest offer for every resolvable
// component. Components with no listings contribute nothing.
func (c *Catalog) Analyze(componentNames []string) CostAnalysis {
	var analysis CostAnalysis
	for _, name := range componentNames {
		result := c.Lookup(name)
		if result.Recommended == nil {
			continue
		}
		analysis.TotalEstimated += result.Recommended.Price

		offers := append([]Listing{*result.Recommended}, result.Alternatives...)
		cheapest, priciest := offers[0], offers[0]
		for _, offer := range offers[1:] {
			if offer.Price < cheapest.Price {
				cheapest = offer
			}
			if offer.Price > priciest.Price {
				priciest = offer
			}
		}
		analysis.BudgetBuild += cheapest.Price
		analysis.PremiumBuild += priciest.Price
	}
	return analysis
}

// pickRecommended scores offers on price band, supplier reliability and
// stock, mirroring a procurement bias toward first-party suppliers.
func pickRecommended(listings []Listing) Listing {
	best := listings[0]
	bestScore := -1
	for _, l := range listings {
		score := 0
		switch {
		case l.Price < 10:
			score += 3
		case l.Price < 20:
			score += 2
		default:
			score++
		}
		switch l.Supplier {
		case "Adafruit", "SparkFun":
			score += 3
		case "Amazon":
			score += 2
		default:
			score++
		}
		if l.InStock {
			score += 2
		}
		if score > bestScore {
			bestScore = score
			best = l
		}
	}
	return best
}

func defaultEntries() map[string][]Listing {
	return map[string][]Listing{
		"esp32": {
			{Name: "ESP32 DevKit C V4", Price: 9.95, Supplier: "Adafruit", SKU: "3405", InStock: true},
			{Name: "ESP32 DevKit C V4", Price: 8.99, Supplier: "Amazon", SKU: "B08D5ZD528", InStock: true},
		},
		"temperature": {
			{Name: "DS18B20 Waterproof Temperature Sensor", Price: 9.95, Supplier: "Adafruit", SKU: "381", InStock: true},
			{Name: "DS18B20 Waterproof Temperature Sensor", Price: 6.99, Supplier: "Amazon", SKU: "B01MY93KW0", InStock: true},
		},
		"ph sensor": {
			{Name: "DFRobot Gravity Analog pH Sensor", Price: 29.90, Supplier: "DFRobot", SKU: "SEN0161", InStock: true},
			{Name: "Atlas Scientific pH Kit", Price: 168.00, Supplier: "Atlas Scientific", SKU: "KIT-103P", InStock: true},
		},
		"water level": {
			{Name: "JSN-SR04T Ultrasonic Water Level Sensor", Price: 8.99, Supplier: "Amazon", SKU: "B01COSN7O6", InStock: true},
		},
		"pump": {
			{Name: "5V Submersible Water Pump", Price: 12.99, Supplier: "Amazon", SKU: "B07PGQNKKC", InStock: true},
			{Name: "12V Peristaltic Dosing Pump", Price: 24.95, Supplier: "Adafruit", SKU: "1150", InStock: true},
		},
		"relay": {
			{Name: "5V Single-Channel Relay Module", Price: 3.99, Supplier: "Amazon", SKU: "B00LW15A4W", InStock: true},
			{Name: "FeatherWing Relay", Price: 9.95, Supplier: "Adafruit", SKU: "3191", InStock: true},
		},
		"display": {
			{Name: "SSD1306 OLED 128x64 Display", Price: 14.95, Supplier: "Adafruit", SKU: "326", InStock: true},
			{Name: "SSD1306 OLED 128x64 Display", Price: 7.99, Supplier: "Amazon", SKU: "B06XRBTBTB", InStock: true},
		},
		"heater": {
			{Name: "12V Aquarium Heater with SSR Control", Price: 25.99, Supplier: "Amazon", SKU: "B07YV5S6M8", InStock: true},
		},
		"camera": {
			{Name: "ESP32-CAM with OV2640", Price: 9.99, Supplier: "Amazon", SKU: "B07S5PVZKV", InStock: true},
		},
		"motion": {
			{Name: "PIR Motion Sensor HC-SR501", Price: 2.99, Supplier: "Amazon", SKU: "B07KZW86YR", InStock: true},
			{Name: "PIR Motion Sensor", Price: 9.95, Supplier: "Adafruit", SKU: "189", InStock: true},
		},
		"power supply": {
			{Name: "12V 3A Power Supply", Price: 12.99, Supplier: "Amazon", SKU: "B01GEA8PQA", InStock: true},
		},
	}
}
