package folio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Coinbase transaction export layout: a preamble of disclaimers and the
// header occupy the first rows, data starts at row index 8. Column indices
// within a data row:
//
//	0 timestamp   1 type       2 ticker   3 quantity
//	5 spot price  8 fees       9 notes
const (
	coinbaseDataStart = 8
	coinbaseMinFields = 10
)

var amountJunk = regexp.MustCompile(`[^0-9,.\-]`)

// ParseAmount parses a human-entered number, tolerating currency symbols and
// both decimal-separator locales: "1.234,56" and "1,234.56" both yield
// 1234.56. With both separators present the one appearing last is the decimal
// separator; with only commas present the comma is the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = amountJunk.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot && strings.LastIndex(s, ",") > strings.LastIndex(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ",", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

// parseCoinbaseType maps a Coinbase transaction label to a TxType. Anything
// unrecognized is a buy, matching how Coinbase labels plain purchases.
func parseCoinbaseType(s string) TxType {
	switch label := strings.ToLower(strings.TrimSpace(s)); {
	case strings.Contains(label, "sell"):
		return Sell
	case strings.Contains(label, "convert"):
		return Convert
	case strings.Contains(label, "reward"), strings.Contains(label, "coinbase earn"),
		strings.Contains(label, "rewards income"):
		return Reward
	default:
		return Buy
	}
}

// ImportCoinbase reads a Coinbase CSV export and records its rows as crypto
// transactions on p, creating assets for new tickers. Malformed rows are
// logged and skipped; the import never aborts mid-file. It returns the
// number of transactions imported.
func ImportCoinbase(p *Portfolio, r io.Reader) (int, error) {
	// The preamble offset counts physical lines, and the blank disclaimer
	// lines matter: encoding/csv would silently drop them and shift every
	// data row. Skip the preamble line by line before handing the rest to
	// the csv reader.
	scanner := bufio.NewScanner(r)
	var data strings.Builder
	for line := 0; scanner.Scan(); line++ {
		if line < coinbaseDataStart {
			continue
		}
		data.WriteString(scanner.Text())
		data.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}

	cr := csv.NewReader(strings.NewReader(data.String()))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	imported, rowIdx := 0, coinbaseDataStart-1
	for {
		rowIdx++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			Log.Warn().Err(err).Int("row", rowIdx).Msg("skipping unreadable csv row")
			continue
		}
		if len(row) < coinbaseMinFields || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if err := importCoinbaseRow(p, row); err != nil {
			Log.Warn().Err(err).Int("row", rowIdx).Msg("skipping csv row")
			continue
		}
		imported++
	}
	if imported == 0 {
		return 0, fmt.Errorf("no transactions found in csv")
	}
	return imported, nil
}

func importCoinbaseRow(p *Portfolio, row []string) error {
	on, err := ParseDateTime(strings.TrimSpace(row[0]))
	if err != nil {
		return err
	}
	ticker := strings.ToUpper(strings.TrimSpace(row[2]))
	if ticker == "" {
		return errors.New("empty ticker")
	}
	qty, err := ParseAmount(row[3])
	if err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	price, err := ParseAmount(row[5])
	if err != nil {
		return fmt.Errorf("spot price: %w", err)
	}
	fees, err := ParseAmount(row[8])
	if err != nil {
		// fees column is frequently blank
		fees = decimal.Zero
	}

	tx := NewTransaction(parseCoinbaseType(row[1]), Q(qty), price, on)
	tx.Fees = fees
	tx.Notes = strings.TrimSpace(row[9])
	return p.Record(ticker, Crypto, tx)
}
