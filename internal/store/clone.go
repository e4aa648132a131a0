package store

import (
	"slices"

	"dc-directory-api-server/internal/models"
)

// cloneDataCenter copies every slice of dc so the store and its callers never
// share a backing array.
func cloneDataCenter(dc models.DataCenter) models.DataCenter {
	cp := dc
	cp.Connectivity.Carriers = slices.Clone(dc.Connectivity.Carriers)
	cp.Connectivity.InternetExchanges = slices.Clone(dc.Connectivity.InternetExchanges)
	cp.Connectivity.FiberProviders = slices.Clone(dc.Connectivity.FiberProviders)
	cp.Connectivity.CloudOnRamps = slices.Clone(dc.Connectivity.CloudOnRamps)
	cp.Security.Compliance = slices.Clone(dc.Security.Compliance)
	cp.Sustainability.GreenCertifications = slices.Clone(dc.Sustainability.GreenCertifications)
	cp.Services = slices.Clone(dc.Services)
	cp.Certifications = slices.Clone(dc.Certifications)
	cp.Amenities = slices.Clone(dc.Amenities)
	cp.NearbyServices = slices.Clone(dc.NearbyServices)
	return cp
}
