package response

import "staybook/internal/usecase/queries"

type PayoutAccountResponse struct {
	AccountRef string `json:"accountRef"`
}

type OnboardingLinkResponse struct {
	URL string `json:"url"`
}

type PayoutStatusResponse struct {
	HasAccount     bool    `json:"hasAccount"`
	AccountRef     *string `json:"accountRef,omitempty"`
	IsComplete     bool    `json:"isComplete"`
	ChargesEnabled bool    `json:"chargesEnabled"`
	PayoutsEnabled bool    `json:"payoutsEnabled"`
}

func FromPayoutStatus(v *queries.PayoutStatusView) *PayoutStatusResponse {
	return &PayoutStatusResponse{
		HasAccount:     v.HasAccount,
		AccountRef:     v.AccountRef,
		IsComplete:     v.IsComplete,
		ChargesEnabled: v.ChargesEnabled,
		PayoutsEnabled: v.PayoutsEnabled,
	}
}

type WebhookAckResponse struct {
	Received bool   `json:"received"`
	EventID  string `json:"eventId"`
	Outcome  string `json:"outcome"`
}
