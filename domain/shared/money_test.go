package shared

import "testing"

func TestMoneyAdd(t *testing.T) {
	a := Rupees(300)
	b := Rupees(150)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sum.Amount() != 450 {
		t.Errorf("Add = %d, want 450", sum.Amount())
	}

	usd := NewMoney(10, "USD")
	if _, err := a.Add(usd); err == nil {
		t.Error("adding different currencies should fail")
	}
}

func TestMoneyMultiplyInt(t *testing.T) {
	m := Rupees(250)
	got, err := m.MultiplyInt(3)
	if err != nil {
		t.Fatalf("MultiplyInt failed: %v", err)
	}
	if got.Amount() != 750 {
		t.Errorf("MultiplyInt = %d, want 750", got.Amount())
	}
	if _, err := m.MultiplyInt(-1); err == nil {
		t.Error("negative quantity should fail")
	}
}

func TestMoneyPercent(t *testing.T) {
	cases := []struct {
		amount  int64
		percent int64
		want    int64
	}{
		{300, 18, 54},
		{100, 18, 18},
		{99, 18, 18},  // 17.82 rounds to 18
		{101, 18, 18}, // 18.18 rounds to 18
		{475, 18, 86}, // 85.5 rounds half up to 86
		{0, 18, 0},
	}
	for _, c := range cases {
		got := Rupees(c.amount).Percent(c.percent)
		if got.Amount() != c.want {
			t.Errorf("Rupees(%d).Percent(%d) = %d, want %d", c.amount, c.percent, got.Amount(), c.want)
		}
	}
}
