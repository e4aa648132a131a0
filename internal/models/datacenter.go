// server/internal/models/datacenter.go
package models

import "time"

// Tier is the service tier classification of a facility.
type Tier string

const (
	Tier1 Tier = "Tier 1"
	Tier2 Tier = "Tier 2"
	Tier3 Tier = "Tier 3"
	Tier4 Tier = "Tier 4"
)

// Tiers lists the tiers an operator can pick from.
var Tiers = []Tier{Tier1, Tier2, Tier3, Tier4}

// CapacityStatus describes how much room a facility has left.
type CapacityStatus string

const (
	StatusAvailable CapacityStatus = "Available"
	StatusLimited   CapacityStatus = "Limited"
	StatusFull      CapacityStatus = "Full"
)

type Specifications struct {
	TotalSpace   Quantity `bson:"totalSpace" json:"totalSpace" yaml:"totalSpace"`
	Power        Quantity `bson:"power" json:"power" yaml:"power"`
	Cooling      string   `bson:"cooling" json:"cooling" yaml:"cooling"`
	Floors       int      `bson:"floors" json:"floors" yaml:"floors" validate:"gte=0"`
	RackCount    int      `bson:"rackCount" json:"rackCount" yaml:"rackCount" validate:"gte=0"`
	PowerDensity Quantity `bson:"powerDensity" json:"powerDensity" yaml:"powerDensity"`
}

type Capacity struct {
	Used           float64        `bson:"used" json:"used" yaml:"used" validate:"finite,gte=0,lte=100"` // percent
	AvailableRacks int            `bson:"availableRacks" json:"availableRacks" yaml:"availableRacks" validate:"gte=0"`
	Status         CapacityStatus `bson:"status" json:"status" yaml:"status" validate:"oneof=Available Limited Full"`
	LastUpdated    time.Time      `bson:"lastUpdated" json:"lastUpdated" yaml:"lastUpdated"`
}

type Connectivity struct {
	Carriers          []string `bson:"carriers" json:"carriers" yaml:"carriers"`
	Bandwidth         string   `bson:"bandwidth" json:"bandwidth" yaml:"bandwidth"`
	InternetExchanges []string `bson:"internetExchanges" json:"internetExchanges" yaml:"internetExchanges"`
	FiberProviders    []string `bson:"fiberProviders" json:"fiberProviders" yaml:"fiberProviders"`
	CloudOnRamps      []string `bson:"cloudOnRamps" json:"cloudOnRamps" yaml:"cloudOnRamps"`
}

type Security struct {
	Level         string   `bson:"level" json:"level" yaml:"level"`
	AccessControl string   `bson:"accessControl" json:"accessControl" yaml:"accessControl"`
	Surveillance  string   `bson:"surveillance" json:"surveillance" yaml:"surveillance"`
	Compliance    []string `bson:"compliance" json:"compliance" yaml:"compliance"`
}

type Sustainability struct {
	PUE                 float64  `bson:"pue" json:"pue" yaml:"pue" validate:"finite,gte=0"`
	RenewableEnergy     float64  `bson:"renewableEnergy" json:"renewableEnergy" yaml:"renewableEnergy" validate:"finite,gte=0,lte=100"`
	CarbonNeutral       bool     `bson:"carbonNeutral" json:"carbonNeutral" yaml:"carbonNeutral"`
	GreenCertifications []string `bson:"greenCertifications" json:"greenCertifications" yaml:"greenCertifications"`
}

type Contact struct {
	Phone     string `bson:"phone" json:"phone" yaml:"phone"`
	Email     string `bson:"email" json:"email" yaml:"email"`
	Website   string `bson:"website" json:"website" yaml:"website"`
	SalesTeam string `bson:"salesTeam" json:"salesTeam" yaml:"salesTeam"`
	Support   string `bson:"support" json:"support" yaml:"support"`
}

// Pricing keeps price labels as the operator typed them ("400", "0.10").
type Pricing struct {
	Colocation      string `bson:"colocation" json:"colocation" yaml:"colocation"`
	DedicatedServer string `bson:"dedicatedServer" json:"dedicatedServer" yaml:"dedicatedServer"`
	CloudHosting    string `bson:"cloudHosting" json:"cloudHosting" yaml:"cloudHosting"`
	Bandwidth       string `bson:"bandwidth" json:"bandwidth" yaml:"bandwidth"`
	Setup           string `bson:"setup" json:"setup" yaml:"setup"`
}

type Reviews struct {
	Rating       float64 `bson:"rating" json:"rating" yaml:"rating" validate:"finite,gte=0,lte=5"`
	TotalReviews int     `bson:"totalReviews" json:"totalReviews" yaml:"totalReviews" validate:"gte=0"`
	Reliability  float64 `bson:"reliability" json:"reliability" yaml:"reliability" validate:"finite,gte=0,lte=5"`
	Support      float64 `bson:"support" json:"support" yaml:"support" validate:"finite,gte=0,lte=5"`
	Value        float64 `bson:"value" json:"value" yaml:"value" validate:"finite,gte=0,lte=5"`
}

// RealTimeData is the latest telemetry reading of a facility: temperature in
// °C, humidity and uptime in percent, power usage in MW, latency in ms.
type RealTimeData struct {
	Temperature    float64 `bson:"temperature" json:"temperature" yaml:"temperature" validate:"finite"`
	Humidity       float64 `bson:"humidity" json:"humidity" yaml:"humidity" validate:"finite,gte=0,lte=100"`
	PowerUsage     float64 `bson:"powerUsage" json:"powerUsage" yaml:"powerUsage" validate:"finite,gte=0"`
	NetworkLatency float64 `bson:"networkLatency" json:"networkLatency" yaml:"networkLatency" validate:"finite,gte=0"`
	Uptime         float64 `bson:"uptime" json:"uptime" yaml:"uptime" validate:"finite,gte=0,lte=100"`
}

// DataCenter is one facility entry of the directory. Nested groups are values,
// so a DataCenter never has a missing group.
type DataCenter struct {
	ID          string      `bson:"id" json:"id" yaml:"id" validate:"required"`
	Name        string      `bson:"name" json:"name" yaml:"name" validate:"required"`
	Location    string      `bson:"location" json:"location" yaml:"location"`
	City        string      `bson:"city" json:"city" yaml:"city"`
	Country     string      `bson:"country" json:"country" yaml:"country"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates" yaml:"coordinates"`
	Tier        Tier        `bson:"tier" json:"tier" yaml:"tier" validate:"oneof='Tier 1' 'Tier 2' 'Tier 3' 'Tier 4'"`
	Description string      `bson:"description" json:"description" yaml:"description"`
	Website     string      `bson:"website" json:"website" yaml:"website"`
	Established string      `bson:"established" json:"established" yaml:"established"`
	Operator    string      `bson:"operator" json:"operator" yaml:"operator"`

	Specifications Specifications `bson:"specifications" json:"specifications" yaml:"specifications"`
	Capacity       Capacity       `bson:"capacity" json:"capacity" yaml:"capacity"`
	Connectivity   Connectivity   `bson:"connectivity" json:"connectivity" yaml:"connectivity"`
	Security       Security       `bson:"security" json:"security" yaml:"security"`
	Sustainability Sustainability `bson:"sustainability" json:"sustainability" yaml:"sustainability"`
	Contact        Contact        `bson:"contact" json:"contact" yaml:"contact"`
	Pricing        Pricing        `bson:"pricing" json:"pricing" yaml:"pricing"`
	Reviews        Reviews        `bson:"reviews" json:"reviews" yaml:"reviews"`
	RealTimeData   RealTimeData   `bson:"realTimeData" json:"realTimeData" yaml:"realTimeData"`

	Services       []string `bson:"services" json:"services" yaml:"services"`
	Certifications []string `bson:"certifications" json:"certifications" yaml:"certifications"`
	Amenities      []string `bson:"amenities" json:"amenities" yaml:"amenities"`
	NearbyServices []string `bson:"nearbyServices" json:"nearbyServices" yaml:"nearbyServices"`
}

// NewDataCenter returns the template an operator starts from when adding a
// facility. Every group is populated so the record is valid as-is.
func NewDataCenter(id string, now time.Time) DataCenter {
	return DataCenter{
		ID:          id,
		Name:        "New Data Center",
		Location:    "New Location",
		City:        "New City",
		Country:     "New Country",
		Tier:        Tier3,
		Description: "New data center description",
		Website:     "https://example.com",
		Established: now.Format("2006"),
		Operator:    "New Operator",
		Specifications: Specifications{
			TotalSpace:   Quantity{Value: 100000, Unit: "sq ft"},
			Power:        Quantity{Value: 20, Unit: "MW"},
			Cooling:      "N+1 Redundant",
			Floors:       5,
			RackCount:    1000,
			PowerDensity: Quantity{Value: 10, Unit: "kW/rack"},
		},
		Capacity: Capacity{
			Used:           50,
			AvailableRacks: 500,
			Status:         StatusAvailable,
			LastUpdated:    now.UTC(),
		},
		Connectivity: Connectivity{
			Carriers:          []string{"Carrier 1"},
			Bandwidth:         "100 Gbps",
			InternetExchanges: []string{"IX 1"},
			FiberProviders:    []string{"Provider 1"},
			CloudOnRamps:      []string{"AWS Direct Connect"},
		},
		Security: Security{
			Level:         "High Security",
			AccessControl: "Key Card Access",
			Surveillance:  "24/7 CCTV",
			Compliance:    []string{"ISO 27001"},
		},
		Sustainability: Sustainability{
			PUE:                 1.4,
			RenewableEnergy:     50,
			GreenCertifications: []string{},
		},
		Contact: Contact{
			Phone:     "+1-555-0123",
			Email:     "contact@example.com",
			Website:   "www.example.com",
			SalesTeam: "sales@example.com",
			Support:   "support@example.com",
		},
		Pricing: Pricing{
			Colocation:      "400",
			DedicatedServer: "250",
			CloudHosting:    "0.10",
			Bandwidth:       "2.50",
			Setup:           "500",
		},
		Reviews: Reviews{Rating: 4.0, Reliability: 4.0, Support: 4.0, Value: 4.0},
		RealTimeData: RealTimeData{
			Temperature:    22.0,
			Humidity:       45,
			PowerUsage:     15.0,
			NetworkLatency: 3.0,
			Uptime:         99.9,
		},
		Services:       []string{"Colocation", "Cloud Hosting"},
		Certifications: []string{"ISO 27001"},
		Amenities:      []string{"Parking", "Reception"},
		NearbyServices: []string{"Hotels", "Restaurants"},
	}
}
