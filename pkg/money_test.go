package pkg

import "testing"

func TestEncryptMoneyRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 100, -5000, 2147483647, -2147483648, 39321}
	for _, v := range values {
		encrypted := EncryptMoney(v)
		if got := DecryptMoney(encrypted); got != v {
			t.Errorf("DecryptMoney(EncryptMoney(%d)) = %d, want %d", v, got, v)
		}
	}
}

func TestEncryptMoneyObscures(t *testing.T) {
	// Zero must not survive as zero or the scrambling is pointless
	if EncryptMoney(0) == 0 {
		t.Error("EncryptMoney(0) = 0, expected an obscured value")
	}
	if EncryptMoney(100) == 100 {
		t.Error("EncryptMoney(100) = 100, expected an obscured value")
	}
}

func TestLoanHashDeterministic(t *testing.T) {
	a := LoanHash(1000, 500, 5000)
	b := LoanHash(1000, 500, 5000)
	if a != b {
		t.Errorf("LoanHash not deterministic: 0x%08X != 0x%08X", a, b)
	}
}

func TestLoanHashSensitivity(t *testing.T) {
	base := LoanHash(1000, 500, 5000)
	tests := []struct {
		name                           string
		initialCash, bankLoan, maxLoan int32
	}{
		{"initial cash", 1001, 500, 5000},
		{"bank loan", 1000, 501, 5000},
		{"max loan", 1000, 500, 5001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoanHash(tt.initialCash, tt.bankLoan, tt.maxLoan); got == base {
				t.Errorf("LoanHash unchanged when %s differs", tt.name)
			}
		})
	}
}
