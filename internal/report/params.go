package report

// Channel identifies which fee structure applies to a set of orders.
type Channel string

const (
	ChannelWebsite Channel = "website"
	ChannelOffice  Channel = "office"
)

// FilterPolicy selects which order rows enter the pipeline.
type FilterPolicy string

const (
	FilterWebsite FilterPolicy = "website" // labels containing "website", case-insensitive
	FilterOffice  FilterPolicy = "office"  // labels in the closed office-source list
	FilterSubset  FilterPolicy = "subset"  // labels in the user-supplied selection
	FilterAll     FilterPolicy = "all"     // pass-through
)

// ProfitBase selects the price the gross profit is computed against.
type ProfitBase string

const (
	ProfitBaseGST        ProfitBase = "gst"        // GST-inclusive selling price
	ProfitBaseDiscounted ProfitBase = "discounted" // raw discounted price
)

const (
	DefaultGSTMultiplier       = 1.18
	DefaultWebsiteFeeRate      = 0.0185
	DefaultShippingFlatRate    = 65.0
	DefaultShippingPerKGRate   = 65.0
	DefaultShippingFlatLimitKG = 1.0

	// LegacyGSTMultiplier predates the 18% GST correction. Configs still
	// carrying it are accepted but warned about at startup.
	LegacyGSTMultiplier = 1.8
)

// Params are the tariff and formula settings of a report run.
type Params struct {
	GSTMultiplier       float64
	WebsiteFeeRate      float64
	ShippingFlatRate    float64
	ShippingPerKGRate   float64
	ShippingFlatLimitKG float64
	ProfitBase          ProfitBase
}

// DefaultParams returns the canonical formula settings.
func DefaultParams() Params {
	return Params{
		GSTMultiplier:       DefaultGSTMultiplier,
		WebsiteFeeRate:      DefaultWebsiteFeeRate,
		ShippingFlatRate:    DefaultShippingFlatRate,
		ShippingPerKGRate:   DefaultShippingPerKGRate,
		ShippingFlatLimitKG: DefaultShippingFlatLimitKG,
		ProfitBase:          ProfitBaseGST,
	}
}
