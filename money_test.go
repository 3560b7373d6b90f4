package folio

import (
	"testing"
)

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name string
		m    Money
		want string
	}{
		{name: "dollars", m: M(110.5, "USD"), want: "$110.50"},
		{name: "thousands", m: M(1234.56, "USD"), want: "$1,234.56"},
		{name: "negative", m: M(-42, "USD"), want: "-$42.00"},
		{name: "euros", m: M(1234.56, "EUR"), want: "€1,234.56"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(10, "USD").SignedString(); got != "+$10.00" {
		t.Errorf("SignedString(+) = %q want +$10.00", got)
	}
	if got := M(-10, "USD").SignedString(); got != "-$10.00" {
		t.Errorf("SignedString(-) = %q want -$10.00", got)
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q want -", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the zero value has the weak "" currency that merges with anything
	var sum Money
	sum = sum.Add(M(10, "USD"))
	sum = sum.Add(M(5, "USD"))
	if sum.Currency() != "USD" {
		t.Errorf("Currency() = %q want USD", sum.Currency())
	}
	if !sum.Equal(M(15, "USD")) {
		t.Errorf("sum = %s want $15.00", sum)
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestMoneyArithmetic(t *testing.T) {
	m := M(100, "USD")
	if got := m.Mul(Q(2.5)); !got.Equal(M(250, "USD")) {
		t.Errorf("Mul = %s want $250.00", got)
	}
	if got := m.Div(Q(4)); !got.Equal(M(25, "USD")) {
		t.Errorf("Div = %s want $25.00", got)
	}
	if got := m.Sub(M(30, "USD")); !got.Equal(M(70, "USD")) {
		t.Errorf("Sub = %s want $70.00", got)
	}
	if got := m.Neg(); !got.Equal(M(-100, "USD")) {
		t.Errorf("Neg = %s want -$100.00", got)
	}
	if !m.GreaterThan(M(99, "USD")) || m.LessThan(M(99, "USD")) {
		t.Error("comparison operators inconsistent")
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(10).Equal(Percent(10.00001)) {
		t.Error("percents within precision should be equal")
	}
	if Percent(10).Equal(Percent(10.1)) {
		t.Error("percents apart should not be equal")
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(12.3456).String(); got != "12.35%" {
		t.Errorf("String() = %q want 12.35%%", got)
	}
	if got := Percent(12.3456).SignedString(); got != "+12.35%" {
		t.Errorf("SignedString() = %q want +12.35%%", got)
	}
	if got := Percent(-5).SignedString(); got != "-5.00%" {
		t.Errorf("SignedString() = %q want -5.00%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q want -", got)
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := ParseQuantity("1.5")
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(Q(1.5)) {
		t.Errorf("ParseQuantity(1.5) = %s", q)
	}
	if _, err := ParseQuantity("one"); err == nil {
		t.Error("ParseQuantity(one) expected error")
	}
}

func TestParseDateTime(t *testing.T) {
	d, err := ParseDateTime("2026-08-30T12:34:56")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2026-08-30T12:34:56" {
		t.Errorf("String() = %q", d.String())
	}

	// RFC 3339 from exchange exports is accepted too
	z, err := ParseDateTime("2026-08-30T12:34:56Z")
	if err != nil {
		t.Fatal(err)
	}
	if z.Hour() != 12 {
		t.Errorf("hour = %d want 12", z.Hour())
	}

	if _, err := ParseDateTime("not a time"); err == nil {
		t.Error("ParseDateTime(garbage) expected error")
	}
}
