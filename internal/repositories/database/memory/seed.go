package memory

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SeedReferenceData loads the same currencies, rates and pools as the
// 000002_seed_reference_data migration.
func (s *Store) SeedReferenceData() {
	ids := make(map[string]int64)
	for _, c := range []domain.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", ParachainName: "Acala"},
		{Code: "EUR", Name: "Euro", Symbol: "€", ParachainName: "Moonbeam"},
		{Code: "GBP", Name: "British Pound", Symbol: "£", ParachainName: "Astar"},
		{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", ParachainName: "Parallel Finance"},
		{Code: "PHP", Name: "Philippine Peso", Symbol: "₱", ParachainName: "Equilibrium"},
		{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", ParachainName: "Phala"},
		{Code: "THB", Name: "Thai Baht", Symbol: "฿", ParachainName: "Centrifuge"},
		{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", ParachainName: "HydraDX"},
	} {
		c.ParachainID = c.Code + " Stablecoin"
		if c.Code == "USD" {
			c.ParachainID = "USDC Stablecoin"
		}
		ids[c.Code] = s.AddCurrency(c).ID
	}

	rates := map[string]map[string]string{
		"USD": {"PHP": "55.27", "MYR": "4.435", "THB": "35.67", "IDR": "15255"},
		"EUR": {"PHP": "58.93", "MYR": "4.73", "THB": "38.05", "IDR": "16278"},
		"GBP": {"PHP": "68.42", "MYR": "5.49", "THB": "44.18", "IDR": "18894"},
		"SGD": {"PHP": "40.68", "MYR": "3.26", "THB": "26.26", "IDR": "11230"},
	}
	for _, src := range []string{"USD", "EUR", "GBP", "SGD"} {
		for _, dst := range []string{"PHP", "MYR", "THB", "IDR"} {
			s.AddExchangeRate(domain.ExchangeRate{
				SourceCurrencyID: ids[src],
				TargetCurrencyID: ids[dst],
				Rate:             decimal.RequireFromString(rates[src][dst]),
			})
		}
	}

	for _, p := range []struct {
		src, dst           string
		total, volume, apy string
	}{
		{"USD", "PHP", "2456789", "132654", "4.8"},
		{"USD", "MYR", "1856432", "98765", "5.2"},
		{"EUR", "PHP", "978345", "45678", "3.9"},
	} {
		s.AddPool(domain.LiquidityPool{
			SourceCurrencyID: ids[p.src],
			TargetCurrencyID: ids[p.dst],
			TotalLiquidity:   decimal.RequireFromString(p.total),
			DailyVolume:      decimal.RequireFromString(p.volume),
			APY:              decimal.RequireFromString(p.apy),
		})
	}
}
