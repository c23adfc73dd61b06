package schemaorg

// Item availability.
const (
	AvailabilityInStock      = "https://schema.org/InStock"
	AvailabilityOutOfStock   = "https://schema.org/OutOfStock"
	AvailabilityPreOrder     = "https://schema.org/PreOrder"
	AvailabilityBackOrder    = "https://schema.org/BackOrder"
	AvailabilityDiscontinued = "https://schema.org/Discontinued"
)

// Item condition.
const (
	ConditionNew         = "https://schema.org/NewCondition"
	ConditionUsed        = "https://schema.org/UsedCondition"
	ConditionRefurbished = "https://schema.org/RefurbishedCondition"
	ConditionDamaged     = "https://schema.org/DamagedCondition"
)

// Merchant return policy.
const (
	ReturnFeesFree                   = "https://schema.org/FreeReturn"
	ReturnFeesCustomerResponsibility = "https://schema.org/ReturnFeesCustomerResponsibility"
	ReturnFeesShipping               = "https://schema.org/ReturnShippingFees"
	ReturnMethodByMail               = "https://schema.org/ReturnByMail"
	ReturnMethodInStore              = "https://schema.org/ReturnInStore"
	ReturnMethodAtKiosk              = "https://schema.org/ReturnAtKiosk"
	ReturnCategoryFiniteWindow       = "https://schema.org/MerchantReturnFiniteReturnWindow"
	ReturnCategoryUnlimitedWindow    = "https://schema.org/MerchantReturnUnlimitedWindow"
	ReturnCategoryNotPermitted       = "https://schema.org/MerchantReturnNotPermitted"
	RefundTypeFull                   = "https://schema.org/FullRefund"
	RefundTypeExchange               = "https://schema.org/ExchangeRefund"
	RefundTypeStoreCredit            = "https://schema.org/StoreCreditRefund"
	PriceTypeStrikethrough           = "https://schema.org/StrikethroughPrice"
)

// Item list ordering.
const (
	ItemListOrderAscending  = "https://schema.org/ItemListOrderAscending"
	ItemListOrderDescending = "https://schema.org/ItemListOrderDescending"
	ItemListUnordered       = "https://schema.org/ItemListUnordered"
)

// Contact point options.
const (
	ContactOptionTollFree        = "TollFree"
	ContactOptionHearingImpaired = "HearingImpairedSupported"
)

// UN/CEFACT unit codes.
const (
	UnitCodeDay   = "DAY"
	UnitCodeWeek  = "WEE"
	UnitCodeMonth = "MON"
	UnitCodeYear  = "ANN"
)

const defaultQueryInput = "required name=search_term_string"

var availabilityByName = map[string]string{
	"InStock":      AvailabilityInStock,
	"OutOfStock":   AvailabilityOutOfStock,
	"PreOrder":     AvailabilityPreOrder,
	"BackOrder":    AvailabilityBackOrder,
	"Discontinued": AvailabilityDiscontinued,
}

var conditionByName = map[string]string{
	"New":         ConditionNew,
	"Used":        ConditionUsed,
	"Refurbished": ConditionRefurbished,
	"Damaged":     ConditionDamaged,
}

var returnFeesByName = map[string]string{
	"FreeReturn":                       ReturnFeesFree,
	"ReturnFeesCustomerResponsibility": ReturnFeesCustomerResponsibility,
	"ReturnShippingFees":               ReturnFeesShipping,
}

var returnMethodByName = map[string]string{
	"ReturnByMail":  ReturnMethodByMail,
	"ReturnInStore": ReturnMethodInStore,
	"ReturnAtKiosk": ReturnMethodAtKiosk,
}

var returnCategoryByName = map[string]string{
	"FiniteReturnWindow":    ReturnCategoryFiniteWindow,
	"UnlimitedReturnWindow": ReturnCategoryUnlimitedWindow,
	"NotPermitted":          ReturnCategoryNotPermitted,
}

var refundTypeByName = map[string]string{
	"FullRefund":   RefundTypeFull,
	"ExchangeOnly": RefundTypeExchange,
	"StoreCredit":  RefundTypeStoreCredit,
}

var unitCodeByName = map[string]string{
	"DAY":   UnitCodeDay,
	"WEEK":  UnitCodeWeek,
	"MONTH": UnitCodeMonth,
	"YEAR":  UnitCodeYear,
}

func lookupOr(table map[string]string, name, fallback string) string {
	if v, ok := table[name]; ok {
		return v
	}
	return fallback
}
