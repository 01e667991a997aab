package entities

import "time"

// MerchantProfile is the aggregate produced by the profile assembler for one
// wallet identity. It is created per connection/refresh/platform-change trigger
// and fully replaced on every trigger, never patched.
type MerchantProfile struct {
	WalletAddress string             `json:"walletAddress"`
	Platform      Platform           `json:"platform"`
	SalesRecords  []DailySalesRecord `json:"salesRecords"`
	Metrics       *SalesMetrics      `json:"metrics"`
	Eligibility   EligibilityResult  `json:"eligibility"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// HasSalesData reports whether any sales history was found for the wallet
func (p *MerchantProfile) HasSalesData() bool {
	return p != nil && p.Metrics != nil && len(p.SalesRecords) > 0
}
