package semicrf

// Flags is the bitmask the driver and optimizer recognize (spec §6.3).
type Flags uint

const (
	DisableWGCache Flags = 1 << iota
	DisableRegularization
	DisableAdaGrad
	EnableLikelihoodOnly
	DisableDateVersion
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }
