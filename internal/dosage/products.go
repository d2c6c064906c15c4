package dosage

import "slices"

// ProductID identifies a treatment product.
type ProductID string

const (
	SodiumHypochlorite  ProductID = "hipoclorito_sodio"
	CalciumHypochlorite ProductID = "hipoclorito_calcio"
	DichlorGranular     ProductID = "dicloro_granulado"
	TrichlorGranular    ProductID = "tricloro_granulado"
	TrichlorTablets     ProductID = "tricloro_pastillas"
	SodiumCarbonate     ProductID = "carbonato_sodio"
	MuriaticAcid        ProductID = "acido_muriatico"
	SodiumBisulfate     ProductID = "bisulfato_sodio"
	SodiumBicarbonate   ProductID = "bicarbonato_sodio"
	AlkalinityIncreaser ProductID = "aumentador_alcalinidad"
	CyanuricAcid        ProductID = "acido_cianurico"
	FreshWaterDilution  ProductID = "dilucion_agua"
)

// Product holds the dosing data of a product. Zero factors mean the
// product has no entry for that calculation and the fallback applies.
type Product struct {
	// Kind is the calculation the product is sold for. Liquid products are
	// measured in ml only there.
	Kind   Kind
	Liquid bool

	// Strength is the default active-ingredient percent for disinfectants.
	Strength float64

	// Grams (ml for liquids) per 10,000 gallons per 0.2 pH units.
	PHRaiseFactor float64
	PHLowerFactor float64

	// Grams per 10,000 gallons per 10 ppm.
	AlkalinityFactor float64
}

var products = map[ProductID]Product{
	SodiumHypochlorite:  {Kind: KindDisinfectant, Liquid: true, Strength: 10},
	CalciumHypochlorite: {Kind: KindDisinfectant, Strength: 65},
	DichlorGranular:     {Kind: KindDisinfectant, Strength: 56},
	TrichlorGranular:    {Kind: KindDisinfectant, Strength: 90},
	TrichlorTablets:     {Kind: KindDisinfectant, Strength: 90},
	SodiumCarbonate:     {Kind: KindPH, PHRaiseFactor: 170},
	MuriaticAcid:        {Kind: KindPH, Liquid: true, PHLowerFactor: 946},
	SodiumBisulfate:     {Kind: KindPH, PHLowerFactor: 680},
	SodiumBicarbonate:   {Kind: KindAlkalinity, AlkalinityFactor: 680},
	AlkalinityIncreaser: {Kind: KindAlkalinity, AlkalinityFactor: 580},
	CyanuricAcid:        {Kind: KindStabilizer},
	FreshWaterDilution:  {Kind: KindStabilizer},
}

const (
	defaultStrength         = 10.0
	defaultPHRaiseFactor    = 170.0
	defaultPHLowerFactor    = 680.0
	defaultAlkalinityFactor = 580.0

	// Grams of granular cyanuric acid per 1000 L per 10 ppm.
	stabilizerFactor = 13.0

	// Liters to US gallons.
	gallonsPerLiter = 0.264172
)

// LookupProduct returns the catalog entry for id.
func LookupProduct(id ProductID) (Product, bool) {
	p, ok := products[id]
	return p, ok
}

// Products lists every catalog product id in lexical order.
func Products() []ProductID {
	ids := make([]ProductID, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// doseUnit is ml for a liquid product used in its own calculation, g
// otherwise.
func (id ProductID) doseUnit(kind Kind) Unit {
	if p := products[id]; p.Liquid && p.Kind == kind {
		return Milliliters
	}
	return Grams
}

func (id ProductID) strength() float64 {
	if s := products[id].Strength; s > 0 {
		return s
	}
	return defaultStrength
}

func (id ProductID) phFactor(raise bool) float64 {
	p := products[id]
	if raise {
		if p.PHRaiseFactor > 0 {
			return p.PHRaiseFactor
		}
		return defaultPHRaiseFactor
	}
	if p.PHLowerFactor > 0 {
		return p.PHLowerFactor
	}
	return defaultPHLowerFactor
}

func (id ProductID) alkalinityFactor() float64 {
	if f := products[id].AlkalinityFactor; f > 0 {
		return f
	}
	return defaultAlkalinityFactor
}

// ProductName returns the display name of id in the given language. Unknown
// products are returned as their raw identifier.
func ProductName(id ProductID, language string) string {
	return MessagesFor(language).productName(id)
}
