package booking

import (
	"sort"

	"swiftdrop/models"

	"github.com/shopspring/decimal"
)

// PricingFunc computes the estimate for one service type. Pricing funcs are
// pure: same draft and distance in, same estimate out, no side effects.
type PricingFunc func(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error)

// Currency is fixed platform-wide.
const Currency = "AUD"

// ContainerType is one orderable secure-destruction container.
type ContainerType struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Capacity    string          `json:"capacity"`
	Price       decimal.Decimal `json:"price"`
	Popular     bool            `json:"popular"`
}

// ContainerTypes is the fixed registry of shred container offerings.
var ContainerTypes = map[string]ContainerType{
	"shred_bag": {
		ID: "shred_bag", Name: "Shred Bag",
		Description: "Holds up to 16kg (~2-3 archive boxes or 45L of paper)",
		Capacity:    "16kg / 45L", Price: dec("33.00"), Popular: true,
	},
	"secure_bin_240": {
		ID: "secure_bin_240", Name: "Secure 240L Bin",
		Description: "Large lockable bin for ongoing shredding needs",
		Capacity:    "240 litres", Price: dec("55.00"),
	},
	"secure_bin_120": {
		ID: "secure_bin_120", Name: "Secure 120L Bin",
		Description: "Medium lockable bin for regular shredding",
		Capacity:    "120 litres", Price: dec("45.00"),
	},
	"archive_box": {
		ID: "archive_box", Name: "Archive Box",
		Description: "Standard archive box - great for bulk clearouts",
		Capacity:    "Standard box", Price: dec("8.80"),
	},
	"banker_box": {
		ID: "banker_box", Name: "Banker Box",
		Description: "Standard banker box with lid",
		Capacity:    "Standard box", Price: dec("8.80"),
	},
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ListContainerTypes returns the container catalog sorted by unit price,
// cheapest first.
func ListContainerTypes() []ContainerType {
	out := make([]ContainerType, 0, len(ContainerTypes))
	for _, ct := range ContainerTypes {
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Per-service pricing constants.
var (
	standardBase    = dec("9.90")
	standardKMRate  = dec("1.80")
	freightBase     = dec("89.00")
	freightKMRate   = dec("3.50")
	tailgateFee     = dec("35.00")
	recurringBase   = dec("7.50")
	multiStopBase   = dec("14.90")
	perStopFee      = dec("5.00")
	whiteGloveBase  = dec("49.00")
	perOptionFee    = dec("25.00")
	signatureBase   = dec("29.00")
	containerDelivy = dec("15.00")
	rubbishBase     = dec("75.00")
	perCubicMetre   = dec("50.00")
	ewasteBase      = dec("45.00")
	perEwasteItem   = dec("10.00")
)

// PricingRule resolves the pricing function for a service type. Disabled
// catalog entries still resolve so started drafts can keep quoting.
func PricingRule(id models.ServiceTypeID) (PricingFunc, error) {
	if _, err := Definition(id); err != nil {
		return nil, err
	}
	switch id {
	case models.ServiceStandard:
		return priceDistanceRated(standardBase, standardKMRate), nil
	case models.ServiceLargeFreight:
		return priceLargeFreight, nil
	case models.ServiceRecurring:
		return priceDistanceRated(recurringBase, standardKMRate), nil
	case models.ServiceMultiStop:
		return priceMultiStop, nil
	case models.ServiceWhiteGlove:
		return priceWhiteGlove, nil
	case models.ServiceSignature:
		return priceDistanceRated(signatureBase, standardKMRate), nil
	case models.ServiceDocumentDestruction:
		return priceDocumentDestruction, nil
	case models.ServiceRubbishRemoval:
		return priceRubbishRemoval, nil
	case models.ServiceElectronicRecycling:
		return priceElectronicRecycling, nil
	}
	return nil, ErrUnknownServiceType
}

// EstimatePrice quotes the draft's selected service type at the given
// distance. Deterministic and free of side effects; callable on every
// draft mutation.
func EstimatePrice(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
	if d.ServiceType == "" {
		return models.PriceEstimate{}, ErrNoServiceSelected
	}
	rule, err := PricingRule(d.ServiceType)
	if err != nil {
		return models.PriceEstimate{}, err
	}
	return rule(d, distanceKM)
}

// finalize assembles the estimate. Only the total is rounded, to 2dp
// half-up, so intermediate terms never compound a rounding error.
func finalize(base, dist, sur decimal.Decimal, distanceKM float64) models.PriceEstimate {
	return models.PriceEstimate{
		BaseFee:           base,
		DistanceComponent: dist,
		Surcharges:        sur,
		Total:             base.Add(dist).Add(sur).Round(2),
		Currency:          Currency,
		DistanceKM:        distanceKM,
	}
}

func checkCommon(d models.BookingDraft, distanceKM float64) error {
	if distanceKM < 0 || d.PackageWeightKG < 0 || d.DeclaredValue < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// distanceComponent is km x rate, scaled by the service level multiplier.
func distanceComponent(distanceKM float64, rate decimal.Decimal, level models.ServiceLevel) decimal.Decimal {
	km := decimal.NewFromFloat(distanceKM)
	mult := decimal.NewFromFloat(level.Multiplier())
	return km.Mul(rate).Mul(mult)
}

// priceDistanceRated covers the services priced as flat base + km rate.
func priceDistanceRated(base, rate decimal.Decimal) PricingFunc {
	return func(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
		if err := checkCommon(d, distanceKM); err != nil {
			return models.PriceEstimate{}, err
		}
		return finalize(base, distanceComponent(distanceKM, rate, d.ServiceLevel), decimal.Zero, distanceKM), nil
	}
}

func priceLargeFreight(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
	if err := checkCommon(d, distanceKM); err != nil {
		return models.PriceEstimate{}, err
	}
	sur := decimal.Zero
	if d.Freight != nil {
		if d.Freight.LengthCM < 0 || d.Freight.WidthCM < 0 || d.Freight.HeightCM < 0 {
			return models.PriceEstimate{}, ErrInvalidQuantity
		}
		if d.Freight.RequiresTailgate {
			sur = sur.Add(tailgateFee)
		}
	}
	return finalize(freightBase, distanceComponent(distanceKM, freightKMRate, d.ServiceLevel), sur, distanceKM), nil
}

func priceMultiStop(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
	if err := checkCommon(d, distanceKM); err != nil {
		return models.PriceEstimate{}, err
	}
	sur := decimal.Zero
	if d.MultiStop != nil {
		stops := decimal.NewFromInt(int64(len(d.MultiStop.AdditionalStops)))
		sur = perStopFee.Mul(stops)
	}
	return finalize(multiStopBase, distanceComponent(distanceKM, standardKMRate, d.ServiceLevel), sur, distanceKM), nil
}

func priceWhiteGlove(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
	if err := checkCommon(d, distanceKM); err != nil {
		return models.PriceEstimate{}, err
	}
	sur := decimal.Zero
	if d.WhiteGlove != nil {
		sur = perOptionFee.Mul(decimal.NewFromInt(int64(d.WhiteGlove.SelectedCount())))
	}
	return finalize(whiteGloveBase, distanceComponent(distanceKM, standardKMRate, d.ServiceLevel), sur, distanceKM), nil
}

// priceDocumentDestruction is a flat-fee service: no distance component.
// Zero container quantities are a zero line-item sum, not an error; the
// delivery fee applies whenever delivery is requested, independent of the
// quantities ordered.
func priceDocumentDestruction(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
	if err := checkCommon(d, distanceKM); err != nil {
		return models.PriceEstimate{}, err
	}
	total := decimal.Zero
	sur := decimal.Zero
	if d.Shredding != nil {
		for id, qty := range d.Shredding.ContainerQuantities {
			if qty < 0 {
				return models.PriceEstimate{}, ErrInvalidQuantity
			}
			ct, ok := ContainerTypes[id]
			if !ok {
				continue
			}
			total = total.Add(ct.Price.Mul(decimal.NewFromInt(int64(qty))))
		}
		if d.Shredding.RequiresDelivery {
			sur = containerDelivy
		}
	}
	return finalize(total, decimal.Zero, sur, distanceKM), nil
}

func priceRubbishRemoval(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
	if err := checkCommon(d, distanceKM); err != nil {
		return models.PriceEstimate{}, err
	}
	volume := 1.0
	if d.Rubbish != nil {
		if d.Rubbish.EstimatedVolume < 0 {
			return models.PriceEstimate{}, ErrInvalidQuantity
		}
		if d.Rubbish.EstimatedVolume > 0 {
			volume = d.Rubbish.EstimatedVolume
		}
	}
	sur := perCubicMetre.Mul(decimal.NewFromFloat(volume))
	return finalize(rubbishBase, distanceComponent(distanceKM, standardKMRate, d.ServiceLevel), sur, distanceKM), nil
}

func priceElectronicRecycling(d models.BookingDraft, distanceKM float64) (models.PriceEstimate, error) {
	if err := checkCommon(d, distanceKM); err != nil {
		return models.PriceEstimate{}, err
	}
	items := 0
	if d.Ewaste != nil {
		for _, item := range d.Ewaste.Items {
			if item.Quantity < 0 {
				return models.PriceEstimate{}, ErrInvalidQuantity
			}
			items += item.Quantity
		}
	}
	sur := perEwasteItem.Mul(decimal.NewFromInt(int64(items)))
	return finalize(ewasteBase, distanceComponent(distanceKM, standardKMRate, d.ServiceLevel), sur, distanceKM), nil
}
