package booking

import (
	"errors"
	"strings"
)

var (
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrInvalidFeeRate  = errors.New("fee rate must be within 0..10000 basis points")
	ErrInvalidCurrency = errors.New("currency must be a three-letter code")
)

const basisPoints = 10000

// Money is an amount in the currency's smallest unit.
type Money struct {
	amount   int64
	currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	c := strings.ToLower(strings.TrimSpace(currency))
	if len(c) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{amount: amount, currency: c}, nil
}

func (m Money) Amount() int64    { return m.amount }
func (m Money) Currency() string { return m.currency }
func (m Money) IsZero() bool     { return m.amount == 0 }

// Quote is the price snapshot taken when a booking is created and the split
// applied when its checkout session is opened.
type Quote struct {
	NightlyRate       int64
	Nights            int
	CleaningFee       int64
	Total             int64
	PlatformFee       int64
	DestinationAmount int64
	Currency          string
}

// StayTotal is nightly rate times nights plus the flat cleaning fee.
func StayTotal(nightlyRate int64, nights int, cleaningFee int64) (int64, error) {
	if nightlyRate < 0 || cleaningFee < 0 || nights < 0 {
		return 0, ErrNegativeAmount
	}
	return nightlyRate*int64(nights) + cleaningFee, nil
}

// PlatformFee rounds half up in integer minor units: total*bps/10000.
func PlatformFee(total, feeBps int64) (int64, error) {
	if total < 0 {
		return 0, ErrNegativeAmount
	}
	if feeBps < 0 || feeBps > basisPoints {
		return 0, ErrInvalidFeeRate
	}
	return (total*feeBps + basisPoints/2) / basisPoints, nil
}

func NewQuote(nightlyRate int64, nights int, cleaningFee int64, currency string, feeBps int64) (Quote, error) {
	total, err := StayTotal(nightlyRate, nights, cleaningFee)
	if err != nil {
		return Quote{}, err
	}
	fee, err := PlatformFee(total, feeBps)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		NightlyRate:       nightlyRate,
		Nights:            nights,
		CleaningFee:       cleaningFee,
		Total:             total,
		PlatformFee:       fee,
		DestinationAmount: total - fee,
		Currency:          currency,
	}, nil
}
