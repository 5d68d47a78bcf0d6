package weights

const (
	Memory = 1

	CpuDevice = 10
	CpuModel  = 8
	CpuVendor = 6
	CpuFlag   = 1
)
