package mutate

import (
	"time"

	"dc-directory-api-server/internal/models"
)

// table lists every editable leaf. The record id is deliberately absent: it is
// fixed once assigned.
var table = []Field{
	text("name", func(dc models.DataCenter) string { return dc.Name }, SetName),
	text("location", func(dc models.DataCenter) string { return dc.Location }, SetLocation),
	text("city", func(dc models.DataCenter) string { return dc.City }, SetCity),
	text("country", func(dc models.DataCenter) string { return dc.Country }, SetCountry),
	number("coordinates.lat", func(dc models.DataCenter) float64 { return dc.Coordinates.Lat }, SetLatitude),
	number("coordinates.lng", func(dc models.DataCenter) float64 { return dc.Coordinates.Lng }, SetLongitude),
	tier("tier", func(dc models.DataCenter) models.Tier { return dc.Tier }, SetTier),
	text("description", func(dc models.DataCenter) string { return dc.Description }, SetDescription),
	text("website", func(dc models.DataCenter) string { return dc.Website }, SetWebsite),
	text("established", func(dc models.DataCenter) string { return dc.Established }, SetEstablished),
	text("operator", func(dc models.DataCenter) string { return dc.Operator }, SetOperator),
	quantity("specifications.totalSpace", func(dc models.DataCenter) models.Quantity { return dc.Specifications.TotalSpace }, SetTotalSpace),
	quantity("specifications.power", func(dc models.DataCenter) models.Quantity { return dc.Specifications.Power }, SetPower),
	text("specifications.cooling", func(dc models.DataCenter) string { return dc.Specifications.Cooling }, SetCooling),
	integer("specifications.floors", func(dc models.DataCenter) int { return dc.Specifications.Floors }, SetFloors),
	integer("specifications.rackCount", func(dc models.DataCenter) int { return dc.Specifications.RackCount }, SetRackCount),
	quantity("specifications.powerDensity", func(dc models.DataCenter) models.Quantity { return dc.Specifications.PowerDensity }, SetPowerDensity),
	number("capacity.used", func(dc models.DataCenter) float64 { return dc.Capacity.Used }, SetCapacityUsed),
	integer("capacity.availableRacks", func(dc models.DataCenter) int { return dc.Capacity.AvailableRacks }, SetAvailableRacks),
	status("capacity.status", func(dc models.DataCenter) models.CapacityStatus { return dc.Capacity.Status }, SetCapacityStatus),
	timestamp("capacity.lastUpdated", func(dc models.DataCenter) time.Time { return dc.Capacity.LastUpdated }, SetCapacityLastUpdated),
	list("connectivity.carriers", func(dc models.DataCenter) []string { return dc.Connectivity.Carriers }, SetCarriers),
	text("connectivity.bandwidth", func(dc models.DataCenter) string { return dc.Connectivity.Bandwidth }, SetBandwidth),
	list("connectivity.internetExchanges", func(dc models.DataCenter) []string { return dc.Connectivity.InternetExchanges }, SetInternetExchanges),
	list("connectivity.fiberProviders", func(dc models.DataCenter) []string { return dc.Connectivity.FiberProviders }, SetFiberProviders),
	list("connectivity.cloudOnRamps", func(dc models.DataCenter) []string { return dc.Connectivity.CloudOnRamps }, SetCloudOnRamps),
	text("security.level", func(dc models.DataCenter) string { return dc.Security.Level }, SetSecurityLevel),
	text("security.accessControl", func(dc models.DataCenter) string { return dc.Security.AccessControl }, SetAccessControl),
	text("security.surveillance", func(dc models.DataCenter) string { return dc.Security.Surveillance }, SetSurveillance),
	list("security.compliance", func(dc models.DataCenter) []string { return dc.Security.Compliance }, SetCompliance),
	number("sustainability.pue", func(dc models.DataCenter) float64 { return dc.Sustainability.PUE }, SetPUE),
	number("sustainability.renewableEnergy", func(dc models.DataCenter) float64 { return dc.Sustainability.RenewableEnergy }, SetRenewableEnergy),
	boolean("sustainability.carbonNeutral", func(dc models.DataCenter) bool { return dc.Sustainability.CarbonNeutral }, SetCarbonNeutral),
	list("sustainability.greenCertifications", func(dc models.DataCenter) []string { return dc.Sustainability.GreenCertifications }, SetGreenCertifications),
	text("contact.phone", func(dc models.DataCenter) string { return dc.Contact.Phone }, SetContactPhone),
	text("contact.email", func(dc models.DataCenter) string { return dc.Contact.Email }, SetContactEmail),
	text("contact.website", func(dc models.DataCenter) string { return dc.Contact.Website }, SetContactWebsite),
	text("contact.salesTeam", func(dc models.DataCenter) string { return dc.Contact.SalesTeam }, SetSalesTeam),
	text("contact.support", func(dc models.DataCenter) string { return dc.Contact.Support }, SetSupportContact),
	text("pricing.colocation", func(dc models.DataCenter) string { return dc.Pricing.Colocation }, SetColocationPrice),
	text("pricing.dedicatedServer", func(dc models.DataCenter) string { return dc.Pricing.DedicatedServer }, SetDedicatedServerPrice),
	text("pricing.cloudHosting", func(dc models.DataCenter) string { return dc.Pricing.CloudHosting }, SetCloudHostingPrice),
	text("pricing.bandwidth", func(dc models.DataCenter) string { return dc.Pricing.Bandwidth }, SetBandwidthPrice),
	text("pricing.setup", func(dc models.DataCenter) string { return dc.Pricing.Setup }, SetSetupPrice),
	number("reviews.rating", func(dc models.DataCenter) float64 { return dc.Reviews.Rating }, SetRating),
	integer("reviews.totalReviews", func(dc models.DataCenter) int { return dc.Reviews.TotalReviews }, SetTotalReviews),
	number("reviews.reliability", func(dc models.DataCenter) float64 { return dc.Reviews.Reliability }, SetReliabilityRating),
	number("reviews.support", func(dc models.DataCenter) float64 { return dc.Reviews.Support }, SetSupportRating),
	number("reviews.value", func(dc models.DataCenter) float64 { return dc.Reviews.Value }, SetValueRating),
	number("realTimeData.temperature", func(dc models.DataCenter) float64 { return dc.RealTimeData.Temperature }, SetTemperature),
	number("realTimeData.humidity", func(dc models.DataCenter) float64 { return dc.RealTimeData.Humidity }, SetHumidity),
	number("realTimeData.powerUsage", func(dc models.DataCenter) float64 { return dc.RealTimeData.PowerUsage }, SetPowerUsage),
	number("realTimeData.networkLatency", func(dc models.DataCenter) float64 { return dc.RealTimeData.NetworkLatency }, SetNetworkLatency),
	number("realTimeData.uptime", func(dc models.DataCenter) float64 { return dc.RealTimeData.Uptime }, SetUptime),
	list("services", func(dc models.DataCenter) []string { return dc.Services }, SetServices),
	list("certifications", func(dc models.DataCenter) []string { return dc.Certifications }, SetCertifications),
	list("amenities", func(dc models.DataCenter) []string { return dc.Amenities }, SetAmenities),
	list("nearbyServices", func(dc models.DataCenter) []string { return dc.NearbyServices }, SetNearbyServices),
}
