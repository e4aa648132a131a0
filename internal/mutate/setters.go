package mutate

import (
	"slices"
	"time"

	"dc-directory-api-server/internal/models"
)

// Each setter below takes a record by value, replaces exactly one leaf and
// returns the result. The caller's record is never touched; list values are
// cloned so the result does not alias the argument.

func SetName(dc models.DataCenter, v string) models.DataCenter {
	dc.Name = v
	return dc
}

func SetLocation(dc models.DataCenter, v string) models.DataCenter {
	dc.Location = v
	return dc
}

func SetCity(dc models.DataCenter, v string) models.DataCenter {
	dc.City = v
	return dc
}

func SetCountry(dc models.DataCenter, v string) models.DataCenter {
	dc.Country = v
	return dc
}

func SetLatitude(dc models.DataCenter, v float64) models.DataCenter {
	dc.Coordinates.Lat = v
	return dc
}

func SetLongitude(dc models.DataCenter, v float64) models.DataCenter {
	dc.Coordinates.Lng = v
	return dc
}

func SetTier(dc models.DataCenter, v models.Tier) models.DataCenter {
	dc.Tier = v
	return dc
}

func SetDescription(dc models.DataCenter, v string) models.DataCenter {
	dc.Description = v
	return dc
}

func SetWebsite(dc models.DataCenter, v string) models.DataCenter {
	dc.Website = v
	return dc
}

func SetEstablished(dc models.DataCenter, v string) models.DataCenter {
	dc.Established = v
	return dc
}

func SetOperator(dc models.DataCenter, v string) models.DataCenter {
	dc.Operator = v
	return dc
}

func SetTotalSpace(dc models.DataCenter, v models.Quantity) models.DataCenter {
	dc.Specifications.TotalSpace = v
	return dc
}

func SetPower(dc models.DataCenter, v models.Quantity) models.DataCenter {
	dc.Specifications.Power = v
	return dc
}

func SetCooling(dc models.DataCenter, v string) models.DataCenter {
	dc.Specifications.Cooling = v
	return dc
}

func SetFloors(dc models.DataCenter, v int) models.DataCenter {
	dc.Specifications.Floors = v
	return dc
}

func SetRackCount(dc models.DataCenter, v int) models.DataCenter {
	dc.Specifications.RackCount = v
	return dc
}

func SetPowerDensity(dc models.DataCenter, v models.Quantity) models.DataCenter {
	dc.Specifications.PowerDensity = v
	return dc
}

func SetCapacityUsed(dc models.DataCenter, v float64) models.DataCenter {
	dc.Capacity.Used = v
	return dc
}

func SetAvailableRacks(dc models.DataCenter, v int) models.DataCenter {
	dc.Capacity.AvailableRacks = v
	return dc
}

func SetCapacityStatus(dc models.DataCenter, v models.CapacityStatus) models.DataCenter {
	dc.Capacity.Status = v
	return dc
}

func SetCapacityLastUpdated(dc models.DataCenter, v time.Time) models.DataCenter {
	dc.Capacity.LastUpdated = v
	return dc
}

func SetCarriers(dc models.DataCenter, v []string) models.DataCenter {
	dc.Connectivity.Carriers = slices.Clone(v)
	return dc
}

func SetBandwidth(dc models.DataCenter, v string) models.DataCenter {
	dc.Connectivity.Bandwidth = v
	return dc
}

func SetInternetExchanges(dc models.DataCenter, v []string) models.DataCenter {
	dc.Connectivity.InternetExchanges = slices.Clone(v)
	return dc
}

func SetFiberProviders(dc models.DataCenter, v []string) models.DataCenter {
	dc.Connectivity.FiberProviders = slices.Clone(v)
	return dc
}

func SetCloudOnRamps(dc models.DataCenter, v []string) models.DataCenter {
	dc.Connectivity.CloudOnRamps = slices.Clone(v)
	return dc
}

func SetSecurityLevel(dc models.DataCenter, v string) models.DataCenter {
	dc.Security.Level = v
	return dc
}

func SetAccessControl(dc models.DataCenter, v string) models.DataCenter {
	dc.Security.AccessControl = v
	return dc
}

func SetSurveillance(dc models.DataCenter, v string) models.DataCenter {
	dc.Security.Surveillance = v
	return dc
}

func SetCompliance(dc models.DataCenter, v []string) models.DataCenter {
	dc.Security.Compliance = slices.Clone(v)
	return dc
}

func SetPUE(dc models.DataCenter, v float64) models.DataCenter {
	dc.Sustainability.PUE = v
	return dc
}

func SetRenewableEnergy(dc models.DataCenter, v float64) models.DataCenter {
	dc.Sustainability.RenewableEnergy = v
	return dc
}

func SetCarbonNeutral(dc models.DataCenter, v bool) models.DataCenter {
	dc.Sustainability.CarbonNeutral = v
	return dc
}

func SetGreenCertifications(dc models.DataCenter, v []string) models.DataCenter {
	dc.Sustainability.GreenCertifications = slices.Clone(v)
	return dc
}

func SetContactPhone(dc models.DataCenter, v string) models.DataCenter {
	dc.Contact.Phone = v
	return dc
}

func SetContactEmail(dc models.DataCenter, v string) models.DataCenter {
	dc.Contact.Email = v
	return dc
}

func SetContactWebsite(dc models.DataCenter, v string) models.DataCenter {
	dc.Contact.Website = v
	return dc
}

func SetSalesTeam(dc models.DataCenter, v string) models.DataCenter {
	dc.Contact.SalesTeam = v
	return dc
}

func SetSupportContact(dc models.DataCenter, v string) models.DataCenter {
	dc.Contact.Support = v
	return dc
}

func SetColocationPrice(dc models.DataCenter, v string) models.DataCenter {
	dc.Pricing.Colocation = v
	return dc
}

func SetDedicatedServerPrice(dc models.DataCenter, v string) models.DataCenter {
	dc.Pricing.DedicatedServer = v
	return dc
}

func SetCloudHostingPrice(dc models.DataCenter, v string) models.DataCenter {
	dc.Pricing.CloudHosting = v
	return dc
}

func SetBandwidthPrice(dc models.DataCenter, v string) models.DataCenter {
	dc.Pricing.Bandwidth = v
	return dc
}

func SetSetupPrice(dc models.DataCenter, v string) models.DataCenter {
	dc.Pricing.Setup = v
	return dc
}

func SetRating(dc models.DataCenter, v float64) models.DataCenter {
	dc.Reviews.Rating = v
	return dc
}

func SetTotalReviews(dc models.DataCenter, v int) models.DataCenter {
	dc.Reviews.TotalReviews = v
	return dc
}

func SetReliabilityRating(dc models.DataCenter, v float64) models.DataCenter {
	dc.Reviews.Reliability = v
	return dc
}

func SetSupportRating(dc models.DataCenter, v float64) models.DataCenter {
	dc.Reviews.Support = v
	return dc
}

func SetValueRating(dc models.DataCenter, v float64) models.DataCenter {
	dc.Reviews.Value = v
	return dc
}

func SetTemperature(dc models.DataCenter, v float64) models.DataCenter {
	dc.RealTimeData.Temperature = v
	return dc
}

func SetHumidity(dc models.DataCenter, v float64) models.DataCenter {
	dc.RealTimeData.Humidity = v
	return dc
}

func SetPowerUsage(dc models.DataCenter, v float64) models.DataCenter {
	dc.RealTimeData.PowerUsage = v
	return dc
}

func SetNetworkLatency(dc models.DataCenter, v float64) models.DataCenter {
	dc.RealTimeData.NetworkLatency = v
	return dc
}

func SetUptime(dc models.DataCenter, v float64) models.DataCenter {
	dc.RealTimeData.Uptime = v
	return dc
}

func SetServices(dc models.DataCenter, v []string) models.DataCenter {
	dc.Services = slices.Clone(v)
	return dc
}

func SetCertifications(dc models.DataCenter, v []string) models.DataCenter {
	dc.Certifications = slices.Clone(v)
	return dc
}

func SetAmenities(dc models.DataCenter, v []string) models.DataCenter {
	dc.Amenities = slices.Clone(v)
	return dc
}

func SetNearbyServices(dc models.DataCenter, v []string) models.DataCenter {
	dc.NearbyServices = slices.Clone(v)
	return dc
}
