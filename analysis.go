package folio

import (
	"sort"
	"time"
)

// AnalysisDays is the default lookback window.
const AnalysisDays = 30

// ValuePoint is one sample of the total portfolio value series.
type ValuePoint struct {
	At    time.Time
	Value float64
}

// Swing is the largest single-step move of the value series.
type Swing struct {
	At     time.Time
	Change Percent
}

// Analysis is the valuation of a portfolio over a lookback window. A
// portfolio whose history cannot produce at least two aligned samples yields
// the zero Analysis (Empty reports true).
type Analysis struct {
	Currency string
	Points   []ValuePoint

	Value      Money
	Invested   Money
	ProfitLoss Money
	Realized   Money   // gains locked in by sells, net of sell fees
	Unrealized Money   // spot gain on the currently held quantity
	Change     Percent // first sample to last sample

	ProfitDays int
	LossDays   int
	Best       Swing
	Worst      Swing

	ROI      map[string]Percent    // per-ticker return over average buy price
	TotalROI Percent               // (value - invested) / invested
	ByType   map[AssetType]Percent // allocation of current value by asset type
	ByAsset  map[string]Percent    // allocation of current value by ticker
}

// Empty reports whether the analysis carries no usable value series.
func (a *Analysis) Empty() bool { return len(a.Points) < 2 }

// nearestPrice returns the sample of points closest in time to t. Points are
// chronological, so a binary search plus a neighbor comparison suffices.
func nearestPrice(points []PricePoint, t time.Time) float64 {
	i := sort.Search(len(points), func(i int) bool { return !points[i].At.Before(t) })
	switch i {
	case 0:
		return points[0].Price
	case len(points):
		return points[len(points)-1].Price
	}
	if t.Sub(points[i-1].At) <= points[i].At.Sub(t) {
		return points[i-1].Price
	}
	return points[i].Price
}

// Analyze values a portfolio over the last days.
//
// Every held asset's price history is fetched in the portfolio currency and
// the per-asset series are aligned by timestamp: the shortest series is the
// reference, and every other asset contributes its sample nearest to each
// reference timestamp. Feeds with identical cadence therefore align
// one-to-one; feeds with different cadences no longer pair unrelated dates.
func Analyze(p *Portfolio, md *MarketData, days int) *Analysis {
	if days <= 0 {
		days = AnalysisDays
	}
	a := &Analysis{
		Currency: p.Currency,
		ROI:      make(map[string]Percent),
		ByType:   map[AssetType]Percent{Crypto: 0, Stock: 0},
		ByAsset:  make(map[string]Percent),
	}

	held := p.Held()
	if len(held) == 0 {
		return a
	}

	type series struct {
		asset    *Asset
		quantity float64
		points   []PricePoint
	}
	all := make([]series, 0, len(held))
	ref := -1
	for _, asset := range held {
		s := series{
			asset:    asset,
			quantity: asset.TotalQuantity().AsFloat(),
			points:   md.History(asset.Ticker, asset.Type, p.Currency, days),
		}
		all = append(all, s)
		if ref < 0 || len(s.points) < len(all[ref].points) {
			ref = len(all) - 1
		}
	}

	a.fillSpotMetrics(p, md, held)

	if len(all[ref].points) < 2 {
		return a
	}

	for _, refPoint := range all[ref].points {
		var total float64
		for _, s := range all {
			total += s.quantity * nearestPrice(s.points, refPoint.At)
		}
		a.Points = append(a.Points, ValuePoint{At: refPoint.At, Value: total})
	}

	first, last := a.Points[0].Value, a.Points[len(a.Points)-1].Value
	a.Value = M(last, p.Currency)
	invested := p.TotalInvested()
	a.Invested = invested
	a.ProfitLoss = a.Value.Sub(invested)
	if first > 0 {
		a.Change = Percent((last/first - 1) * 100)
	}
	if inv := invested.AsFloat(); inv > 0 {
		a.TotalROI = Percent((last - inv) / inv * 100)
	}

	bestSet, worstSet := false, false
	for i := 1; i < len(a.Points); i++ {
		prev, cur := a.Points[i-1].Value, a.Points[i].Value
		if prev <= 0 {
			continue
		}
		change := Percent((cur/prev - 1) * 100)
		// flat steps count as neither
		if change > 0 {
			a.ProfitDays++
		} else if change < 0 {
			a.LossDays++
		}
		if !bestSet || change > a.Best.Change {
			a.Best = Swing{At: a.Points[i].At, Change: change}
			bestSet = true
		}
		if !worstSet || change < a.Worst.Change {
			a.Worst = Swing{At: a.Points[i].At, Change: change}
			worstSet = true
		}
	}
	return a
}

// fillSpotMetrics computes spot-price based metrics: per-asset ROI, the
// realized/unrealized profit split and the allocation of the current value by
// asset and by type.
func (a *Analysis) fillSpotMetrics(p *Portfolio, md *MarketData, held []*Asset) {
	values := make(map[string]float64, len(held))
	var totalValue, unrealized float64
	realized := M(0, p.Currency)
	for _, asset := range held {
		spot := md.Price(asset.Ticker, asset.Type, p.Currency)

		avg := asset.AverageBuyPrice().InexactFloat64()
		if avg > 0 {
			a.ROI[asset.Ticker] = Percent((spot - avg) / avg * 100)
		} else {
			a.ROI[asset.Ticker] = 0
		}

		realized = realized.Add(M(asset.RealizedGain(), p.Currency))
		quantity := asset.TotalQuantity().AsFloat()
		unrealized += quantity * (spot - avg)

		value := quantity * spot
		values[asset.Ticker] = value
		totalValue += value
	}
	a.Realized = realized
	a.Unrealized = M(unrealized, p.Currency)
	if totalValue <= 0 {
		return
	}
	for _, asset := range held {
		share := Percent(values[asset.Ticker] / totalValue * 100)
		a.ByAsset[asset.Ticker] = share
		a.ByType[asset.Type] += share
	}
}
