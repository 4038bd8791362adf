package config

type Currency struct {
	Code   string
	Name   string
	Symbol string
}

var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "TND", Name: "Tunisian Dinar", Symbol: "DT"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
}

func LookupCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}

	return Currency{}, false
}
