package schemaorg

import (
	"encoding/json"
	"strconv"

	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// MapOffer returns an Offer node.
//
// A sale price becomes the active price and the regular price moves into a
// strikethrough UnitPriceSpecification, unless StrikethroughPrice is given.
// Availability defaults to InStock and condition to New.
func (m *Mapper) MapOffer(in Offer) (jsonld.Node, error) {
	id, err := m.optionalID("Offer", in.SchemaID, nodeid.KindOffer, in.URL, "")
	if err != nil {
		return nil, err
	}

	activePrice := in.Price
	if in.SalePrice != "" {
		activePrice = in.SalePrice
	}
	strikethrough := in.StrikethroughPrice
	if strikethrough == "" && in.SalePrice != "" {
		strikethrough = in.Price
	}

	n := newNode("Offer", id)
	putString(n, "url", in.URL)
	putNumber(n, "price", activePrice)
	putString(n, "priceCurrency", in.Currency)
	if strikethrough != "" {
		n["priceSpecification"] = jsonld.Node{
			"@type":         "UnitPriceSpecification",
			"price":         strikethrough,
			"priceCurrency": in.Currency,
			"priceType":     PriceTypeStrikethrough,
		}
	}
	n["availability"] = lookupOr(availabilityByName, in.Availability, AvailabilityInStock)
	n["itemCondition"] = lookupOr(conditionByName, in.ItemCondition, ConditionNew)
	if in.Quantity != nil {
		n["inventoryLevel"] = quantitativeValue(*in.Quantity, "")
	}
	putString(n, "priceValidUntil", in.PriceValidUntil)
	if in.Shipping != nil {
		n["shippingDetails"] = mapShipping(*in.Shipping, in.ShipsFrom)
	}
	if in.Returns != nil {
		n["hasMerchantReturnPolicy"] = mapReturns(*in.Returns)
	}
	return n, nil
}

func (m *Mapper) mapOffers(offers []Offer, defaultURL string) ([]jsonld.Node, error) {
	out := make([]jsonld.Node, 0, len(offers))
	for _, offer := range offers {
		if offer.URL == "" {
			offer.URL = defaultURL
		}
		n, err := m.MapOffer(offer)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func mapShipping(in Shipping, shipsFrom *Address) jsonld.Node {
	n := jsonld.Node{"@type": "OfferShippingDetails"}
	if shipsFrom != nil {
		origin := jsonld.Node{"@type": "DefinedRegion"}
		putString(origin, "addressCountry", shipsFrom.AddressCountry)
		putString(origin, "addressRegion", shipsFrom.AddressRegion)
		putString(origin, "postalCode", shipsFrom.PostalCode)
		n["shippingOrigin"] = origin
	}
	n["shippingRate"] = jsonld.Node{
		"@type":    "MonetaryAmount",
		"value":    in.Cost,
		"currency": firstNonEmpty(in.Currency, "USD"),
	}
	destination := jsonld.Node{"@type": "DefinedRegion"}
	putStrings(destination, "addressCountry", in.Destinations)
	n["shippingDestination"] = destination

	if in.HandlingTime != nil || in.DeliveryTime != nil {
		delivery := jsonld.Node{"@type": "ShippingDeliveryTime"}
		if in.HandlingTime != nil {
			delivery["handlingTime"] = dayRange(*in.HandlingTime)
		} else {
			delivery["handlingTime"] = quantitativeValue(0, UnitCodeDay)
		}
		if in.DeliveryTime != nil {
			delivery["transitTime"] = dayRange(*in.DeliveryTime)
		}
		n["deliveryTime"] = delivery
	}
	return n
}

func dayRange(r DayRange) jsonld.Node {
	return jsonld.Node{
		"@type":    "QuantitativeValue",
		"unitCode": UnitCodeDay,
		"minValue": r.MinDays,
		"maxValue": r.MaxDays,
	}
}

func mapReturns(in ReturnPolicy) jsonld.Node {
	n := jsonld.Node{"@type": "MerchantReturnPolicy"}
	putList(n, "applicableCountry", in.ApplicableCountry)
	putString(n, "returnPolicyCategory", returnPolicyCategory(in))
	if days := firstInt(in.MerchantReturnDays, in.ReturnWindowDays, in.Days); days != nil {
		n["merchantReturnDays"] = *days
	}
	putString(n, "merchantReturnLink", firstNonEmpty(in.MerchantReturnLink, in.ReturnPolicyURL))
	if in.ReturnFees != "" {
		n["returnFees"] = lookupOr(returnFeesByName, in.ReturnFees, ReturnFeesCustomerResponsibility)
	}
	n["returnMethod"] = returnMethod(in.ReturnMethod)
	if refund, ok := refundTypeByName[firstNonEmpty(in.RefundType, in.Type)]; ok {
		n["refundType"] = refund
	}
	if in.ReturnShippingFeesAmount != nil {
		fee := jsonld.Node{"@type": "MonetaryAmount", "value": in.ReturnShippingFeesAmount.Amount}
		putString(fee, "currency", in.ReturnShippingFeesAmount.Currency)
		n["returnShippingFeesAmount"] = fee
	}
	return n
}

// returnPolicyCategory maps an explicit category. Without one, only the
// FullRefund, ExchangeOnly and StoreCredit types imply a finite window;
// any other input leaves the category unset.
func returnPolicyCategory(in ReturnPolicy) string {
	if in.ReturnPolicyCategory != "" {
		return lookupOr(returnCategoryByName, in.ReturnPolicyCategory, ReturnCategoryFiniteWindow)
	}
	switch in.Type {
	case "FullRefund", "ExchangeOnly", "StoreCredit":
		return ReturnCategoryFiniteWindow
	default:
		return ""
	}
}

func returnMethod(methods StringList) any {
	if len(methods) == 0 {
		return ReturnMethodByMail
	}
	mapped := make(StringList, len(methods))
	for i, method := range methods {
		mapped[i] = lookupOr(returnMethodByName, method, ReturnMethodByMail)
	}
	return mapped.value()
}

// PriceOf formats a float as an offer price.
func PriceOf(value float64) json.Number {
	return json.Number(strconv.FormatFloat(value, 'f', -1, 64))
}
