package libcpuid

// Vendor ids from cpu_vendor_t, stored in IDRecord.Vendor.
const (
	VendorIntel     = 0
	VendorAMD       = 1
	VendorCyrix     = 2
	VendorNexGen    = 3
	VendorTransmeta = 4
	VendorUMC       = 5
	VendorCentaur   = 6
	VendorRise      = 7
	VendorSiS       = 8
	VendorNSC       = 9
	VendorHygon     = 10

	NumVendors    = 11
	VendorUnknown = -1
)
