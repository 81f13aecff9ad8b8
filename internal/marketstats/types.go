package marketstats

// Overview holds the headline metrics for one set of listings.
type Overview struct {
	TotalProducts  int     `json:"total_products"`
	TotalUnitsSold int     `json:"total_units_sold"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgPrice       float64 `json:"avg_price"`
	MedianPrice    float64 `json:"median_price"`
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
	AvgRating      float64 `json:"avg_rating"`
}

// Concentration captures how revenue distributes over the catalog.
// ConcentrationRatio is the revenue share of the top decile of products
// by revenue; LongTailIndex is 1 minus that share. Both are in [0,1].
type Concentration struct {
	TopDecileProducts  int                  `json:"top_decile_products"`
	ConcentrationRatio float64              `json:"concentration_ratio"`
	LongTailIndex      float64              `json:"long_tail_index"`
	Sellers            *SellerConcentration `json:"sellers,omitempty"`
}

// SellerConcentration describes how sales volume distributes over
// sellers. Omitted when no record in the batch carries a seller.
type SellerConcentration struct {
	TopSellerShare    float64 `json:"top_seller_share"`
	UniqueSellers     int     `json:"unique_sellers"`
	AvgUnitsPerSeller float64 `json:"avg_units_per_seller"`
}

// PriceBand is one equal-width slice of the observed price range.
type PriceBand struct {
	Band           int     `json:"band"`
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
	ProductCount   int     `json:"product_count"`
	TotalUnitsSold int     `json:"total_units_sold"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgRating      float64 `json:"avg_rating"`
}

// PriceAnalysis combines the banded view with the price/volume
// correlation. Correlation is null when fewer than 2 distinct price
// points exist.
type PriceAnalysis struct {
	Bands                 []PriceBand `json:"bands"`
	SweetSpots            []SweetSpot `json:"sweet_spots,omitempty"`
	PriceSalesCorrelation *float64    `json:"price_sales_correlation"`
}

// SweetSpot is one of the price ranges where sales volume concentrates,
// ranked by units sold.
type SweetSpot struct {
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
	TotalUnitsSold int     `json:"total_units_sold"`
}

// FeatureStat reports how listings carrying a title token perform.
type FeatureStat struct {
	Token        string  `json:"token"`
	Frequency    int     `json:"frequency"`
	AvgRating    float64 `json:"avg_rating"`
	AvgUnitsSold float64 `json:"avg_units_sold"`
}

// LaunchProfile summarizes how long the catalog has been on the market.
type LaunchProfile struct {
	Buckets               []LaunchBucket `json:"buckets"`
	AvgDaysSinceLaunch    float64        `json:"avg_days_since_launch"`
	MedianDaysSinceLaunch float64        `json:"median_days_since_launch"`
}

// LaunchBucket groups products by time since launch.
type LaunchBucket struct {
	Age          string  `json:"age"`
	ProductCount int     `json:"product_count"`
	AvgRating    float64 `json:"avg_rating"`
	AvgUnitsSold float64 `json:"avg_units_sold"`
}

// RatingBand is one slice of the rating distribution.
type RatingBand struct {
	Band         string  `json:"band"`
	ProductCount int     `json:"product_count"`
	UnitsShare   float64 `json:"units_share"`
}

// RatingProfile describes how ratings distribute across the catalog.
type RatingProfile struct {
	Distribution       []RatingBand `json:"distribution"`
	AvgRating          float64      `json:"avg_rating"`
	MedianRating       float64      `json:"median_rating"`
	ReviewToSalesRatio float64      `json:"review_to_sales_ratio"`
}

// PlatformStats is the full metric set for one platform (or combined).
// LaunchProfile is omitted entirely when no record in the batch carries
// a launch date; that absence is meaningful, not an error.
type PlatformStats struct {
	Overview      Overview       `json:"overview"`
	Concentration Concentration  `json:"concentration"`
	PriceAnalysis PriceAnalysis  `json:"price_analysis"`
	TopFeatures   []FeatureStat  `json:"top_features"`
	LaunchProfile *LaunchProfile `json:"launch_profile,omitempty"`
	RatingProfile RatingProfile  `json:"rating_profile"`
}

// PlatformOverview pairs a platform with its overview for the
// side-by-side cross-platform comparison.
type PlatformOverview struct {
	Platform string   `json:"platform"`
	Overview Overview `json:"overview"`
}

// Report is the market-landscape half of the pipeline output.
type Report struct {
	Platforms     map[string]PlatformStats `json:"platforms"`
	Combined      PlatformStats            `json:"combined"`
	CrossPlatform []PlatformOverview       `json:"cross_platform,omitempty"`
}
