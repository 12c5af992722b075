package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"mca/pkg/calendar"
	"mca/pkg/domain"
)

// OfferSummary counts a syndicator's offers per state. A pending offer past
// its expiry counts as expired.
type OfferSummary struct {
	PendingCount   int             `json:"pendingCount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	AcceptedCount  int             `json:"acceptedCount"`
	AcceptedAmount decimal.Decimal `json:"acceptedAmount"`
	DeclinedCount  int             `json:"declinedCount"`
	DeclinedAmount decimal.Decimal `json:"declinedAmount"`
	ExpiredCount   int             `json:"expiredCount"`
}

// SyndicatorStats are the figures of a syndicator across its fundings.
type SyndicatorStats struct {
	SyndicatorID         domain.PartyID  `json:"syndicatorId"`
	ActiveCount          int             `json:"activeCount"`
	InvestedAmount       decimal.Decimal `json:"investedAmount"`
	ExpectedReturnAmount decimal.Decimal `json:"expectedReturnAmount"`
	PayoutAmount         decimal.Decimal `json:"payoutAmount"`
	OutstandingAmount    decimal.Decimal `json:"outstandingAmount"`
	Offers               OfferSummary    `json:"offers"`
}

// SyndicatorInput holds a syndicator's syndications, offers and payout
// intents, plus the payback amount of every funding it participates in.
type SyndicatorInput struct {
	SyndicatorID   domain.PartyID
	Syndications   []domain.Syndication
	Offers         []domain.SyndicationOffer
	Payouts        []domain.Intent
	PaybackAmounts map[domain.FundingID]decimal.Decimal
}

// Syndicator computes the figures of a syndicator as of asOf. The expected
// return of a syndication is its participation percent of the funding's
// payback amount less the management fee percent.
func Syndicator(in SyndicatorInput, asOf time.Time) SyndicatorStats {
	s := SyndicatorStats{SyndicatorID: in.SyndicatorID}

	mine := make(map[domain.SyndicationID]struct{}, len(in.Syndications))
	for _, syn := range in.Syndications {
		if syn.Status == domain.SyndicationStatusCancelled {
			continue
		}
		mine[syn.ID] = struct{}{}

		if syn.Status == domain.SyndicationStatusActive {
			s.ActiveCount++
		}
		s.InvestedAmount = s.InvestedAmount.Add(syn.ParticipationAmount)

		share := syn.ParticipationPercent.Div(hundred)
		keep := decimal.NewFromInt(1).Sub(syn.ManagementFeePercent.Div(hundred))
		s.ExpectedReturnAmount = s.ExpectedReturnAmount.Add(in.PaybackAmounts[syn.FundingID].Mul(share).Mul(keep))
	}

	for _, it := range in.Payouts {
		if it.Kind != domain.IntentKindSyndicationPayout || it.Status != domain.IntentStatusSucceeded {
			continue
		}
		if it.SyndicationID != nil {
			if _, ok := mine[*it.SyndicationID]; !ok {
				continue
			}
		} else if it.PayeeID != in.SyndicatorID {
			continue
		}
		s.PayoutAmount = s.PayoutAmount.Add(it.Amount)
	}

	s.InvestedAmount = domain.Money(s.InvestedAmount)
	s.ExpectedReturnAmount = domain.Money(s.ExpectedReturnAmount)
	s.PayoutAmount = domain.Money(s.PayoutAmount)
	s.OutstandingAmount = decimal.Max(s.ExpectedReturnAmount.Sub(s.PayoutAmount), decimal.Zero)
	s.Offers = summarizeOffers(in.Offers, asOf)

	return s
}

func summarizeOffers(offers []domain.SyndicationOffer, asOf time.Time) OfferSummary {
	var o OfferSummary
	for _, off := range offers {
		switch off.Status {
		case domain.SyndicationOfferStatusPending:
			if !off.ExpiresAt.IsZero() && calendar.Date(off.ExpiresAt).Before(calendar.Date(asOf)) {
				o.ExpiredCount++

				continue
			}
			o.PendingCount++
			o.PendingAmount = o.PendingAmount.Add(off.OfferedAmount)
		case domain.SyndicationOfferStatusAccepted:
			o.AcceptedCount++
			o.AcceptedAmount = o.AcceptedAmount.Add(off.OfferedAmount)
		case domain.SyndicationOfferStatusDeclined:
			o.DeclinedCount++
			o.DeclinedAmount = o.DeclinedAmount.Add(off.OfferedAmount)
		case domain.SyndicationOfferStatusExpired:
			o.ExpiredCount++
		}
	}

	return o
}
